//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"google.golang.org/grpc"
)

// client is the subset of grpc.ClientConnInterface the gateway uses.
type client interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
