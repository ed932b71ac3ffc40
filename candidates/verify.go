package candidates

import (
	"context"

	"github.com/can-gurkan/lear/checks"
	"github.com/can-gurkan/lear/learconfigs"
	"github.com/can-gurkan/lear/logs"
	"github.com/can-gurkan/lear/netlogo"
	"github.com/can-gurkan/lear/syncs"
	"golang.org/x/sync/errgroup"
)

type Verdict struct {
	Candidate Candidate
	netlogo.Result
	Checks map[string]bool
	// Passed is set when the rule is valid and every check passed
	Passed bool
}

type VerifyOne func(ctx context.Context, candidate Candidate) Verdict

func (Module) VerifyOne(
	logger logs.Logger,
	verifier *netlogo.Verifier,
	framework *checks.Framework,
) VerifyOne {
	return func(ctx context.Context, candidate Candidate) Verdict {
		result := verifier.Verify(candidate.Code)
		ok, results := framework.Verify(ctx, candidate.Code)
		verdict := Verdict{
			Candidate: candidate,
			Result:    result,
			Checks:    results,
			Passed:    result.Valid && (ok || len(results) == 0),
		}
		logger.InfoContext(ctx, "verdict",
			"candidate", candidate.Name,
			"valid", result.Valid,
			"category", result.Category.String(),
			"diagnostic", result.Diagnostic,
			"passed", verdict.Passed,
		)
		return verdict
	}
}

// VerifyAll verifies candidates concurrently. Verdicts are in the order
// of candidates. It fails only when ctx is done.
type VerifyAll func(ctx context.Context, candidates []Candidate) ([]Verdict, error)

func (Module) VerifyAll(
	verifyOne VerifyOne,
	newSpan logs.NewSpan,
	parallel learconfigs.Parallel,
) VerifyAll {
	return func(ctx context.Context, candidates []Candidate) ([]Verdict, error) {
		ctx, _ = newSpan(ctx, "")
		verdicts := make([]Verdict, len(candidates))
		sem := syncs.NewSemaphore(int(parallel))
		g, gctx := errgroup.WithContext(ctx)
		for i, candidate := range candidates {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := sem.AcquireContext(gctx); err != nil {
					return err
				}
				defer sem.Release()
				verdicts[i] = verifyOne(gctx, candidate)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return verdicts, nil
	}
}
