// Package pgtest starts a throwaway Postgres for the repository integration
// suites and migrates the full schema into it.
package pgtest

import (
	"context"
	"sync"
	"time"

	pgadapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs postgres:15-alpine, connects gorm to it and migrates the schema.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err := pgadapter.Migrate(db); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE history, vehicles, incidents, evidences, deliveries,
		stops, routes, validation_results, order_lines, orders RESTART IDENTITY CASCADE`).Error
}

// Tracker records what repositories report, standing in for the unit of work.
type Tracker struct {
	mu      sync.Mutex
	IDs     []kernel.UUID
	Entries []history.Entry
}

func (t *Tracker) TrackAggregate(id kernel.UUID, _ any, transitions []history.Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.IDs = append(t.IDs, id)
	t.Entries = append(t.Entries, transitions...)
}

// Events returns the event names recorded so far, in order.
func (t *Tracker) Events() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		out = append(out, e.EventType())
	}
	return out
}
