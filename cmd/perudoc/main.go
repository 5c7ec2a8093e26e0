package main

import (
	"os"

	"github.com/dmitrymomot/perudoc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
