package cli

import (
	"context"
	"runtime/trace"
)

// traced runs one operation inside a runtime/trace region named
// "rwfile.<op>", so `go tool trace` shows the read and write paths (text
// prompt included) as separate regions.
func traced(ctx context.Context, op string, fn func() error) error {
	defer trace.StartRegion(ctx, "rwfile."+op).End()
	return fn()
}
