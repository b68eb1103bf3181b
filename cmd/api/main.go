package main

import (
	"context"
	"os"

	"shelter-api/internal/cli"
)

// @title Shelter API
// @version 1.0
// @description Adoptantes y perros del refugio.
// @BasePath /api/v1
func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
