package main

import (
	"os"

	"gcombinatr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
