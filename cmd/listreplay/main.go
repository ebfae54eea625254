package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zhanar2709/linkedlist/internal/replay"
	"github.com/zhanar2709/linkedlist/internal/script"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var verbose bool
	var workers int
	var log *zap.Logger

	cmd := &cobra.Command{
		Use:   "listreplay [files...]",
		Short: "Replay scripts of linked list operations",
		Long: `Executes YAML scripts of linked list operations. Every script runs against its own list,
scripts are executed concurrently. Final content of every list is printed.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			log, err = config.Build()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := replayFiles(logger.WithLogger(cmd.Context(), log), out, workers, args)
			if err != nil {
				log.Error("Replay failed", zap.Error(err))
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().IntVarP(&workers, "workers", "w", replay.DefaultWorkers, "Number of scripts executed concurrently")

	return cmd
}

func replayFiles(ctx context.Context, out io.Writer, workers int, paths []string) error {
	log := logger.Get(ctx)

	scripts := make([]script.Script, 0, len(paths))
	for _, path := range paths {
		s, err := script.Load(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	resultCh := make(chan script.Result)
	errCh := make(chan error, 1)
	go func() {
		errCh <- replay.Run(ctx, log, workers, scripts, resultCh)
	}()

	var nFailed int
	for res := range resultCh {
		if res.Err != nil {
			nFailed++
			log.Warn("Script failed", zap.String("script", res.Name), zap.Error(res.Err))
		} else {
			log.Info("Script succeeded", zap.String("script", res.Name), zap.Int("size", len(res.Values)))
		}

		fmt.Fprintf(out, "== %s\n", res.Name)
		for _, v := range res.Values {
			fmt.Fprintln(out, v)
		}
	}

	if err := <-errCh; err != nil {
		return errors.WithMessagef(err, "%d of %d scripts failed", nFailed, len(scripts))
	}
	return nil
}
