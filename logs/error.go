package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span and the agent in ctx to err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if v := ctx.Value(SpanKey); v != nil {
		err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	}
	if agent, ok := AgentFrom(ctx); ok {
		err = errors.Join(err, fmt.Errorf("agent: %s", agent))
	}
	return err
}
