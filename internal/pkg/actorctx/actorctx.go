// Package actorctx carries the authenticated caller through a request
// context.
package actorctx

import (
	"context"

	"deliveryhub/internal/entities"
)

type ctxKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func FromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actor, ok
}
