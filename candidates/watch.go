package candidates

import (
	"context"

	"github.com/can-gurkan/lear/logs"
	"github.com/fsnotify/fsnotify"
)

// Watch verifies candidate files under dir each time one is created or
// written, until ctx is done.
type Watch func(ctx context.Context, dir string, fn func(Verdict)) error

func (Module) Watch(
	logger logs.Logger,
	verifyOne VerifyOne,
) Watch {
	return func(ctx context.Context, dir string, fn func(Verdict)) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(dir); err != nil {
			return err
		}
		logger.InfoContext(ctx, "watching",
			"dir", dir,
		)

		for {
			select {

			case <-ctx.Done():
				return ctx.Err()

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if !IsCandidateFile(ev.Name) {
					continue
				}
				candidate, err := LoadFile(ev.Name)
				if err != nil {
					// removed or renamed before read
					logger.WarnContext(ctx, "load candidate",
						"path", ev.Name,
						"error", err,
					)
					continue
				}
				fn(verifyOne(ctx, candidate))

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.WarnContext(ctx, "watch error",
					"error", err,
				)

			}
		}
	}
}
