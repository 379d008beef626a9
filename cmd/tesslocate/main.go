package main

import (
	"github.com/joho/godotenv"

	"github.com/gideongrinberg/tesslocate/internal/cli"
)

func main() {
	// A .env file is optional; missing is not an error.
	_ = godotenv.Load()

	cli.Execute()
}
