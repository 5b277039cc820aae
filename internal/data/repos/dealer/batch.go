package dealer

import "gorm.io/gorm"

// createBatch inserts rows in one statement. The batch lands whole or not at all,
// so the count is the number of root rows passed in. Associations are not counted.
func createBatch[T any](tx *gorm.DB, rows []*T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func pluckIDs(tx *gorm.DB, model any) ([]uint, error) {
	ids := []uint{}
	if err := tx.Model(model).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
