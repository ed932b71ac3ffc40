package retries

import (
	"context"
	"fmt"

	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/logs"
	"github.com/can-gurkan/lear/netlogo"
	"github.com/can-gurkan/lear/prompts"
)

// Generate produces a rule for agent. correction is empty on the first
// call, and holds a repair request embedding the rejected rule and its
// diagnostic on later calls.
type Generate func(ctx context.Context, agent logs.Agent, correction string) (string, error)

// Execute generates rules until one verifies, at most MaxAttempts times.
// It returns the first safe rule, or original when all attempts failed.
// Generator errors count as failed attempts. When ctx is done it returns
// original with the context error.
type Execute func(ctx context.Context, original string, generate Generate, agent logs.Agent) (string, error)

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	verifier *netlogo.Verifier,
	maxAttempts learconfigs.MaxAttempts,
) Execute {
	return func(ctx context.Context, original string, generate Generate, agent logs.Agent) (string, error) {
		ctx = logs.WithAgent(ctx, agent)
		ctx, _ = newSpan(ctx, "")

		var code, diagnostic string
		generated := false
		for attempt := 1; attempt <= int(maxAttempts); attempt++ {
			if err := ctx.Err(); err != nil {
				return original, logs.WrapSpan(ctx, err)
			}

			var correction string
			if generated {
				correction = CorrectionPrompt(code, diagnostic)
			}
			newCode, err := generate(ctx, agent, correction)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return original, logs.WrapSpan(ctx, ctxErr)
				}
				logger.ErrorContext(ctx, "generate",
					"attempt", attempt,
					"error", err,
				)
				continue
			}
			code = newCode
			generated = true

			var ok bool
			ok, diagnostic = verifier.IsSafe(code)
			if ok {
				logger.InfoContext(ctx, "generated valid code",
					"attempts", attempt,
				)
				return code, nil
			}
			logger.WarnContext(ctx, "attempt failed",
				"attempt", attempt,
				"diagnostic", diagnostic,
			)
		}

		logger.WarnContext(ctx, "attempts exhausted, keep original code",
			"max attempts", int(maxAttempts),
		)
		return original, nil
	}
}

// ShouldRetry reports whether another attempt is due after count failed
// ones with the given diagnostic. An empty diagnostic means success.
func ShouldRetry(maxAttempts learconfigs.MaxAttempts, count int, diagnostic string) bool {
	return count < int(maxAttempts) && diagnostic != ""
}

func CorrectionPrompt(code string, diagnostic string) string {
	return fmt.Sprintf(prompts.Correction, code, diagnostic)
}
