package commands

import "context"

type changeTracker interface {
	HasTransitions() bool
}

// saveIfChanged writes agg only when it recorded a transition, so repeating
// a successful command does not bump versions or emit events.
func saveIfChanged[T changeTracker](ctx context.Context, agg T, update func(context.Context, T) error) error {
	if !agg.HasTransitions() {
		return nil
	}
	return update(ctx, agg)
}
