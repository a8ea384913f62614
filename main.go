package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/birmacher/ai-agent/cmd"
	"github.com/birmacher/ai-agent/logger"
	"github.com/birmacher/ai-agent/runner"
)

func main() {
	err := cmd.Execute()
	logger.Sync()

	if err != nil {
		if !errors.Is(err, runner.ErrNoPrompt) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
