// Command desksort classifies desktop icons and arranges them into zones.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mesh-intelligence/desksort/internal/cli"
)

func main() {
	// A .env file in the working directory may carry DESKSORT_ overrides.
	_ = godotenv.Load()
	os.Exit(cli.Execute())
}
