package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IT-Nick/quizbot/internal/app"
	"github.com/IT-Nick/quizbot/internal/domain/quiz/bank"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizbot",
		Short:         "Quiz chat bot for Telegram and HTTP callbacks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newBankCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot and the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.NewApp(configPath)
			if err != nil {
				return err
			}
			return application.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to YAML config (empty: environment only)")
	return cmd
}

func newBankCmd() *cobra.Command {
	bankCmd := &cobra.Command{Use: "bank", Short: "Question bank commands"}

	var bankPath string
	check := &cobra.Command{
		Use:   "check",
		Short: "Load and validate a question bank",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := bank.Load(bankPath)
			if err != nil {
				return err
			}
			source := bankPath
			if source == "" {
				source = "embedded"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions OK\n", source, b.Len())
			return nil
		},
	}
	check.Flags().StringVar(&bankPath, "bank", os.Getenv("QUIZ_BANK_PATH"), "question bank file (.json, .yaml); empty means embedded")

	bankCmd.AddCommand(check)
	return bankCmd
}
