package main

import (
	"os"

	"github.com/spring-cli/spring/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
