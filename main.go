package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/lista/cmd"
	"github.com/thenoetrevino/lista/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; anything else is printed here
		var coder cli.ExitCoder
		if !errors.As(err, &coder) || coder.ExitCode() == cli.ExitUsage {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
