package main

import (
	"fmt"
	"os"

	"github.com/yungbote/cardealer/internal/app"
	"github.com/yungbote/cardealer/internal/platform/dbctx"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init app: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(dbctx.Background(), os.Stdout); err != nil {
		a.Log.Error("Run failed", "error", err)
		a.Close()
		os.Exit(1)
	}
	a.Close()
}
