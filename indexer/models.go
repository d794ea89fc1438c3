// Package indexer persists TokenCore's event log to a relational store
// for off-chain querying: an AutoMigrate-driven schema of one append-only
// event table plus materialized balance/allowance projections.
package indexer

import (
	"time"

	"gorm.io/gorm"
)

// EventRecord is the append-only audit trail: one row per emitted
// TokenCore event, in emission order.
type EventRecord struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	EventType  string `gorm:"size:64;index"`
	Attributes string `gorm:"type:text"`
	CreatedAt  time.Time
}

// BalanceProjection mirrors BalanceOf for every address the indexer has
// ever observed move funds, so reporting queries can avoid round-tripping
// through the live ledger.
type BalanceProjection struct {
	Address   string `gorm:"primaryKey;size:64"`
	Balance   string `gorm:"size:96;not null"`
	UpdatedAt time.Time
}

// AllowanceProjection mirrors Allowance(owner, spender) for every pair the
// indexer has observed an allowance-changing event for.
type AllowanceProjection struct {
	Owner     string `gorm:"primaryKey;size:64"`
	Spender   string `gorm:"primaryKey;size:64"`
	Allowance string `gorm:"size:96;not null"`
	UpdatedAt time.Time
}

// SupplyProjection tracks total outstanding supply over time, one row per
// observed change, for audit trend queries.
type SupplyProjection struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	TotalSupply string `gorm:"size:96;not null"`
	CreatedAt   time.Time
}

// IdempotencyKey stores request idempotency metadata for the gateway's
// mutating entry points, consumed by gateway/middleware.Idempotency.
type IdempotencyKey struct {
	Key       string `gorm:"primaryKey;size:128"`
	RequestID string `gorm:"size:64"`
	Method    string `gorm:"size:8"`
	Path      string `gorm:"size:255"`
	Status    int
	Response  string `gorm:"type:text"`
	CreatedAt time.Time
}

// AutoMigrate performs all schema migrations for the indexer.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&EventRecord{},
		&BalanceProjection{},
		&AllowanceProjection{},
		&SupplyProjection{},
		&IdempotencyKey{},
	)
}
