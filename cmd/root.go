// Package cmd implements the CLI commands for docnode2md using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "docnode2md",
		Short: "docnode2md — render deno doc output as Markdown",
		Long: `docnode2md converts the documentation nodes produced by "deno doc --json"
into a flat Markdown document and splices it into a README template.

Usage:
  docnode2md generate [source] [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(opts.log, cmd, opts.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: .docnode2md.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setupLogger writes logs to the command's stderr: colored text on a
// terminal, JSON lines otherwise.
func setupLogger(log *logrus.Logger, cmd *cobra.Command, verbose bool) {
	out := cmd.ErrOrStderr()
	log.SetOutput(out)

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docnode2md version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docnode2md %s\n", Version)
		},
	}
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
