// Package cache provides an optional cache of finished document analyses,
// keyed by the sha256 content hash of the uploaded bytes. Identical documents
// re-uploaded within the TTL skip the model call.
package cache

import (
	"context"
	"time"
)

// AnalysisCache stores serialized analyses by content-hash key.
type AnalysisCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Noop is used when no cache backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte, time.Duration) {}
