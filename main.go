package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spigell/cv-assistant/cmd"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
