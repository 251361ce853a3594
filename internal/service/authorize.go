package service

import "context"

// authorize loads a resource with load, which must also verify that the
// caller may act on it, and then applies mutate to it. The loaded resource
// is returned so callers can echo the pre-mutation record.
func authorize[T any](
	ctx context.Context,
	load func(ctx context.Context) (T, error),
	mutate func(ctx context.Context, resource T) error,
) (T, error) {
	var zero T

	resource, err := load(ctx)
	if err != nil {
		return zero, err
	}
	if err := mutate(ctx, resource); err != nil {
		return zero, err
	}
	return resource, nil
}
