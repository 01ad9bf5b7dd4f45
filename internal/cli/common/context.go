package common

import "context"

type runtimeKey struct{}

func WithRuntime(ctx context.Context, runtime Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, runtime)
}

func RuntimeFrom(ctx context.Context) (Runtime, bool) {
	if ctx == nil {
		return Runtime{}, false
	}
	runtime, ok := ctx.Value(runtimeKey{}).(Runtime)
	return runtime, ok
}
