package main

import (
	"os"

	"github.com/Pure-Company/purekata/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
