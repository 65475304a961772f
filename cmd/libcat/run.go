package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/libcat"
	"github.com/aretw0/libcat/pkg/input"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive catalog (default command)",
	Args:  cobra.NoArgs,
	RunE:  runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := libcat.NewSession(ctx,
		libcat.WithInput(cmd.InOrStdin()),
		libcat.WithOutput(cmd.OutOrStdout()),
		libcat.WithConfig(cfg),
		libcat.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, input.ErrInputClosed) {
			return errors.New("input closed before Exit was chosen; catalog discarded")
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
