// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

const defaultTxTimeout = time.Second * 30

type lazyTxContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx holds a transaction that is only opened on first database access
type lazyTx struct {
	db     *sql.DB
	tx     TxInterface
	done   bool
	cancel context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	if lt.done {
		return nil, sql.ErrTxDone
	}

	// not bound to the request context, a client disconnect must not roll back mid-write
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) finish(commit bool) error {
	defer func() {
		lt.done = true
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if lt.tx == nil {
		return nil
	}

	if commit {
		return lt.tx.Commit()
	}

	if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

type DBClient struct {
	// pool is the native PGX pool we hold to allow closing
	pool *pgxpool.Pool
	// db wraps the pool for squirrel and transactions
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder bound to the transaction in ctx if one is open, the pool otherwise.
// When the transaction cannot be opened every statement fails, it never falls back to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	lt := lazyTxFromContext(ctx)
	if lt == nil {
		return builder.RunWith(d.db)
	}

	tx, err := lt.get()
	if err != nil {
		d.logger.Errorf("failed to open transaction: %v", err)
		return builder.RunWith(&failedRunner{err: fmt.Errorf("failed to open transaction: %w", err)})
	}

	return builder.RunWith(tx)
}

// WithTx runs fn inside a transaction committed when fn returns nil.
// Nested calls join the outermost transaction, the connection is only acquired on first use.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	if lazyTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db}
	txCtx := context.WithValue(ctx, lazyTxContextKey{}, lt)

	if err := fn(txCtx); err != nil {
		if rerr := lt.finish(false); rerr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rerr)
		}
		return err
	}

	if err := lt.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AdvisoryLock takes a transaction scoped advisory lock, it must be called within WithTx
func (d *DBClient) AdvisoryLock(ctx context.Context, key int64) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.AdvisoryLock")
	defer span.End()

	lt := lazyTxFromContext(ctx)
	if lt == nil {
		return fmt.Errorf("advisory lock %d requested outside a transaction", key)
	}

	tx, err := lt.get()
	if err != nil {
		return fmt.Errorf("failed to open transaction for advisory lock %d: %w", key, err)
	}

	_, err = sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		RunWith(tx).
		Select().
		Column(sq.Expr("pg_advisory_xact_lock(?)", key)).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to acquire advisory lock %d: %w", key, err)
	}

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	return d.db.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates a new DBClient backed by a pgx pool
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
