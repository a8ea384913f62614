package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/birmacher/ai-agent/common"
	"github.com/birmacher/ai-agent/llm"
	"github.com/birmacher/ai-agent/logger"
	"github.com/birmacher/ai-agent/runner"
	"github.com/birmacher/ai-agent/version"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai-agent <prompt words...>",
		Short: "Send a prompt to an LLM and print the response",
		Long: `ai-agent forwards the given words as a single prompt to a hosted language model
and prints the answer. Include --verbose anywhere in the prompt to also print
the token usage of the request.`,
		// Every argument is prompt text, --verbose and --help included
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init("warn")
		},
		Args: func(cmd *cobra.Command, args []string) error {
			return runner.CheckArgs(cmd.OutOrStdout(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args)
		},
	}
}

// Execute runs the root command and handles errors
func Execute() error {
	return execute(rootCmd, os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) error {
	// cobra treats a leading __complete as a shell completion request
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		logger.Init("warn")
		return run(cmd.OutOrStdout(), args)
	}

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func run(out io.Writer, args []string) error {
	if err := common.LoadEnv(); err != nil {
		logger.Warnf("Failed to load %s: %v", common.EnvFile, err)
	}

	settings := common.WithYamlFile()
	logger.SetLevel(settings.LogLevel)
	logger.Debugf("ai-agent v%s, provider: %s", version.Version, settings.Provider)

	client, err := newClient(settings)
	if err != nil {
		return err
	}

	r := runner.New(client, out,
		runner.WithReuseVerboseResponse(settings.ReuseVerboseResponse),
	)
	return r.Run(args)
}

func newClient(settings common.Settings) (llm.LLM, error) {
	retryConfig := common.DefaultRetryConfig().WithMaxRetries(settings.MaxRetries)
	httpClient := common.NewRetryableClient(retryConfig).StandardClient()

	return llm.NewLLM(
		settings.Provider,
		common.GetAPIKey(settings.Provider),
		llm.DefaultModel(settings.Provider),
		llm.WithAPITimeout(settings.APITimeout),
		llm.WithMaxTokens(settings.MaxTokens),
		llm.WithBaseURL(settings.BaseURL),
		llm.WithHTTPClient(httpClient),
	)
}
