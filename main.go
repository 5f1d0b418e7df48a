package main

import (
	"os"

	"github.com/ankivoice/ankivoice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
