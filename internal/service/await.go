package service

import (
	"context"
	"errors"
	"fmt"
)

type result[T any] struct {
	value T
	err   error
}

// await runs call on its own goroutine and waits for its result or for ctx
// to be done, whichever comes first. An expired deadline is reported as
// [ErrBackendTimeout]; cancellation is returned as ctx.Err().
//
// The goroutine is not interrupted when await gives up. It receives ctx and
// is expected to return soon after ctx is done; its result is dropped.
func await[T any](ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	done := make(chan result[T], 1)

	go func() {
		value, err := call(ctx)
		done <- result[T]{value: value, err: err}
	}()

	var zero T
	select {
	case res := <-done:
		if res.err != nil && ctx.Err() != nil && errors.Is(res.err, context.DeadlineExceeded) {
			return zero, fmt.Errorf("%w: %w", ErrBackendTimeout, res.err)
		}
		return res.value, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, ErrBackendTimeout
		}
		return zero, ctx.Err()
	}
}
