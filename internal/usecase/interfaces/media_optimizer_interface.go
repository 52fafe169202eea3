package interfaces

import "context"

// OptimizeResult is the outcome of a media optimization.
//
// When Degraded is true, Data is the untouched input and Err holds the cause.
// Callers are expected to carry on with Data either way.
type OptimizeResult struct {
	Data     []byte
	Degraded bool
	Err      error
}

type IMediaOptimizer interface {
	OptimizeImage(ctx context.Context, data []byte) OptimizeResult
	OptimizePdf(ctx context.Context, data []byte) OptimizeResult
}
