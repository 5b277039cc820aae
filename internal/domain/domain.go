package domain

import (
	"github.com/yungbote/cardealer/internal/domain/dealer"
	"github.com/yungbote/cardealer/internal/domain/hospital"
)

type Supplier = dealer.Supplier
type Part = dealer.Part
type Car = dealer.Car
type PartCar = dealer.PartCar
type Customer = dealer.Customer
type Sale = dealer.Sale

type Patient = hospital.Patient
type Visitation = hospital.Visitation
