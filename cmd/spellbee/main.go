package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/spellbee/internal/cli"
	"codeberg.org/snonux/spellbee/internal/models"
	"codeberg.org/snonux/spellbee/internal/processor"
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

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file and environment values for unset flags
	cli.ApplyConfig(flags)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), "")
		return lister.ListAvailableModels(ctx)
	}

	proc := processor.NewProcessor(flags)

	words, err := proc.LoadWords(args)
	if err != nil {
		return err
	}

	if flags.TUIMode {
		return proc.RunTUIMode(ctx, words)
	}

	// No --tui: launch GUI mode by default
	return proc.RunGUIMode(words)
}
