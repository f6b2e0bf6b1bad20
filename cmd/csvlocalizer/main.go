package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/csvlocalizer/internal/cli"
	"codeberg.org/snonux/csvlocalizer/internal/logging"
	"codeberg.org/snonux/csvlocalizer/internal/models"
	"codeberg.org/snonux/csvlocalizer/internal/processor"
	"codeberg.org/snonux/csvlocalizer/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file and environment fill in whatever was not given as a flag
	cli.ApplyConfig(flags)
	if err := flags.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	logger, err := logging.New(logging.Config{Level: flags.LogLevel, Format: flags.LogFormat})
	if err != nil {
		return err
	}

	// Handle --list-models flag
	if flags.ListModels {
		if flags.Provider == translation.ProviderGemini {
			return models.ListGeminiModels(ctx, cli.GetGeminiKey(), os.Stdout)
		}
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx)
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return fmt.Errorf("an input file is required (or use --batch)")
	}

	translator, err := processor.NewTranslator(ctx, flags, logger)
	if err != nil {
		return err
	}

	// Create processor
	proc, err := processor.NewProcessor(flags, translator, logger)
	if err != nil {
		return err
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		return proc.ProcessBatch(ctx)
	}

	output := ""
	if len(args) > 1 {
		output = args[1]
	}

	// Process single file
	if _, err := proc.Process(ctx, args[0], output); err != nil {
		return err
	}
	return nil
}
