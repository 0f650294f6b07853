package main

import (
	"os"

	"github.com/jmcampanini/git-pr/cmd"
	"github.com/jmcampanini/git-pr/internal/failure"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(os.Stderr, err)
		os.Exit(failure.ExitCode(err))
	}
}
