// Package replay executes many scripts concurrently, each against its own list.
package replay

import (
	"context"
	"fmt"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/zhanar2709/linkedlist/internal/script"
)

// DefaultWorkers is the default number of scripts executed at the same time.
const DefaultWorkers = 5

type task struct {
	Index  int
	Script script.Script
}

// Run executes scripts using the pool of workers and sends results to resultCh. Results arrive in the order
// of completion. resultCh is closed before Run returns. log is installed in the context passed to the workers.
func Run(
	ctx context.Context,
	log *zap.Logger,
	nWorkers int,
	scripts []script.Script,
	resultCh chan<- script.Result,
) error {
	defer close(resultCh)

	if nWorkers <= 0 {
		nWorkers = DefaultWorkers
	}

	ctx = logger.WithLogger(ctx, log)
	errCh := make(chan error, len(scripts))
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		taskCh := make(chan task, nWorkers)

		spawn("taskDistributor", parallel.Continue, func(ctx context.Context) error {
			return taskDistributor(ctx, scripts, taskCh)
		})
		for i := 0; i < nWorkers; i++ {
			spawn(fmt.Sprintf("worker-%d", i), parallel.Continue, func(ctx context.Context) error {
				return worker(ctx, taskCh, resultCh, errCh)
			})
		}

		return nil
	})
	close(errCh)
	if err != nil {
		return err
	}

	// results of canceled run are incomplete
	if ctx.Err() != nil {
		return errors.WithStack(ctx.Err())
	}

	var errs error
	for err := range errCh {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func taskDistributor(ctx context.Context, scripts []script.Script, taskCh chan<- task) error {
	defer close(taskCh)

	for i, s := range scripts {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case taskCh <- task{Index: i, Script: s}:
		}
	}
	return nil
}

func worker(
	ctx context.Context,
	taskCh <-chan task,
	resultCh chan<- script.Result,
	errCh chan<- error,
) error {
	log := logger.Get(ctx)
	for task := range taskCh {
		log.Debug("Running script", zap.Int("index", task.Index), zap.String("script", task.Script.Name))

		res, err := script.Run(ctx, task.Script)
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}
		if err != nil {
			errCh <- errors.WithMessagef(err, "script %s", task.Script.Name)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case resultCh <- res:
		}
	}
	return nil
}
