package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager runs a function inside a database transaction that is propagated
// through the context; repositories pick it up via querier.
type Manager struct {
	internal *manager.Manager
	level    pgx.TxIsoLevel
}

type Option func(*Manager)

// WithIsoLevel overrides the default isolation level (read committed).
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.level = level
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    pgx.ReadCommitted,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do runs fn in a transaction. Row locks taken inside fn are what keep
// concurrent state transitions apart, so read committed is enough.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, m.level, fn)
}
