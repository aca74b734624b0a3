// Command folio renders a personal portfolio in the terminal.
package main

import (
	"errors"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/folio-tui/folio/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		cli.PrintError(err)
		var preflight *cli.PreflightError
		if errors.As(err, &preflight) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
