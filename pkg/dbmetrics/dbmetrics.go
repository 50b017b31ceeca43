// Package dbmetrics оборачивает *sql.DB для сбора метрик запросов
// и передачи активной транзакции через context.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и их обёрток
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey struct{}

// WithExecutor кладет активную транзакцию в context
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor возвращает транзакцию из context, если она есть, иначе def
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction проверяет, есть ли в context активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}

// DB обёртка над *sql.DB, записывающая длительность запросов
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// WrapWithDefault оборачивает db и запускает фоновый сбор статистики пула.
// stopCh закрывается при остановке сервиса.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, m: m}
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.m.DBConnsOpen.Set(float64(stats.OpenConnections))
			d.m.DBConnsIdle.Set(float64(stats.Idle))
			d.m.DBConnsInUse.Set(float64(stats.InUse))
		}
	}
}

// ExecContext выполняет запрос с записью метрики
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.m.DBQueryDuration.WithLabelValues("exec").Observe(time.Since(start).Seconds())
	return result, err
}

// QueryContext выполняет запрос с записью метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.m.DBQueryDuration.WithLabelValues("query").Observe(time.Since(start).Seconds())
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрики
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.m.DBQueryDuration.WithLabelValues("query_row").Observe(time.Since(start).Seconds())
	return row
}

// BeginTx начинает транзакцию (реализация TxBeginner для репозиториев)
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}
