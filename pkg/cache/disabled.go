package cache

import (
	"context"
	"time"
)

// disabled stands in for the PDF cache when REDIS_URL is unset or Redis did
// not answer: lookups always miss and writes are dropped.
type disabled struct{}

// Disabled returns a Cache that stores nothing.
func Disabled() Cache { return disabled{} }

func (disabled) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (disabled) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (disabled) Delete(context.Context, string) error { return nil }
func (disabled) Close() error { return nil }
