package main

import (
	"os"

	"github.com/bjaus/mdtable/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
