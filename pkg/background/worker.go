package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"deliveryhub/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of periodic background work.
type Task interface {
	// TTL is the interval between runs.
	TTL() time.Duration

	Do(context.Context) error

	// Info is a human readable name used in logs.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker runs a set of tasks until its context is cancelled.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New runs every task once synchronously (warm-up) and then schedules
// each of them on its own ticker.
//
// A warm-up error or panic aborts construction: New returns the error and
// nothing is scheduled. After a successful warm-up, failures of individual
// runs are logged and the schedule continues.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("task panic during warm-up",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(stack)),
					)
				}
			}()
			log.Info("warming up task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.runBackgroundTask(ctx, task)
		}()
	}

	return worker, nil
}

// Wait blocks until every scheduled task has observed cancellation.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, periodic execution skipped",
			logger.NewField("ttl", ttl),
		)
		return
	}
	taskLog.Info("periodic execution started",
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("periodic execution stopped")
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, taskLog, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, taskLog logger.Logger, task Task) {
	defer func() {
		if r := recover(); r != nil {
			taskLog.Error("background task panic",
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		taskLog.Error("background task failed", logger.ErrorField(err))
	}
}
