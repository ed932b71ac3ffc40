package logs

import "context"

// Agent identifies the simulated agent a log record is about.
type Agent string

type agentKey struct{}

var AgentKey agentKey

func WithAgent(ctx context.Context, agent Agent) context.Context {
	return context.WithValue(ctx, AgentKey, agent)
}

func AgentFrom(ctx context.Context) (Agent, bool) {
	agent, ok := ctx.Value(AgentKey).(Agent)
	return agent, ok
}
