package indexer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tokencore/core/events"
	"tokencore/core/types"
)

// Driver selects the GORM dialect Open constructs.
type Driver string

const (
	// DriverSQLite is the local/dev/test driver, backed by glebarez/sqlite
	// (a cgo-free port).
	DriverSQLite Driver = "sqlite"
	// DriverPostgres is the production driver.
	DriverPostgres Driver = "postgres"
)

// Open constructs a *gorm.DB for driver against dsn and runs AutoMigrate.
func Open(driver Driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite, "":
		dialector = sqliteOpen(dsn)
	default:
		return nil, fmt.Errorf("indexer: unknown driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("indexer: open %s: %w", driver, err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("indexer: migrate: %w", err)
	}
	return db, nil
}

// Indexer is an events.Emitter that persists every event it observes to a
// relational store, alongside the projections queries read from directly
// rather than replaying the whole event log.
type Indexer struct {
	db     *gorm.DB
	logger *slog.Logger
}

// New wraps db as an Indexer. logger may be nil, in which case slog's
// default logger is used for persistence failures (Emit has no error
// return to surface them through).
func New(db *gorm.DB, logger *slog.Logger) *Indexer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Indexer{db: db, logger: logger}
}

// Emit implements events.Emitter. Persistence failures are logged rather
// than propagated: the event has already committed at the ledger layer by
// the time an emitter sees it, so the indexer cannot veto it and instead
// treats its own write as best-effort.
func (ix *Indexer) Emit(e events.Event) {
	envelope := e.ToEnvelope()
	if err := ix.record(envelope); err != nil {
		ix.logger.Error("indexer: record failed", "eventType", envelope.Type, "error", err.Error())
		return
	}
	if err := ix.project(envelope); err != nil {
		ix.logger.Error("indexer: project failed", "eventType", envelope.Type, "error", err.Error())
	}
}

func (ix *Indexer) record(envelope *types.Event) error {
	attrs, err := json.Marshal(envelope.Attributes)
	if err != nil {
		return err
	}
	return ix.db.Create(&EventRecord{
		EventType:  envelope.Type,
		Attributes: string(attrs),
		CreatedAt:  nowFunc(),
	}).Error
}

// project updates the materialized balance/allowance/supply tables from
// envelope. Events the projections don't track (pause, blacklist,
// authority changes) are recorded but not projected.
func (ix *Indexer) project(envelope *types.Event) error {
	attrs := envelope.Attributes
	switch envelope.Type {
	case events.TypeTransfer:
		// Balances moved; the indexer doesn't know post-transfer balances
		// from the envelope alone (only the amount moved), so the caller's
		// TotalSupply/BalanceOf sync path (SyncBalance) is what keeps
		// BalanceProjection authoritative. Transfer itself is audit-only
		// here.
		return nil
	case events.TypeSetAllowance:
		return ix.upsertAllowance(attrs["owner"], attrs["spender"], attrs["allowance"])
	case events.TypeIncreaseAllowance, events.TypeDecreaseAllowance:
		return ix.upsertAllowance(attrs["owner"], attrs["spender"], attrs["allowance"])
	default:
		return nil
	}
}

func (ix *Indexer) upsertAllowance(owner, spender, allowance string) error {
	row := AllowanceProjection{Owner: owner, Spender: spender, Allowance: allowance, UpdatedAt: nowFunc()}
	return ix.db.Save(&row).Error
}

// SyncBalance overwrites the materialized balance row for addr, for a
// caller to invoke after a Dispatch that may have moved addr's funds
// (mint, burn, transfer, transfer_from) since the event log alone doesn't
// carry resulting balances. Nothing in this repository calls it
// automatically.
func (ix *Indexer) SyncBalance(addr string, balance string) error {
	row := BalanceProjection{Address: addr, Balance: balance, UpdatedAt: nowFunc()}
	return ix.db.Save(&row).Error
}

// SyncTotalSupply appends a new supply observation.
func (ix *Indexer) SyncTotalSupply(total string) error {
	return ix.db.Create(&SupplyProjection{TotalSupply: total, CreatedAt: nowFunc()}).Error
}

func sqliteOpen(dsn string) gorm.Dialector {
	if strings.TrimSpace(dsn) == "" {
		dsn = "file::memory:?cache=shared"
	}
	return sqlite.Open(dsn)
}

// nowFunc is a seam for deterministic tests.
var nowFunc = time.Now
