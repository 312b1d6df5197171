package store_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
	"github.com/MrJamesThe3rd/dispatch/internal/ident/store"
)

// counterDriver answers the counter queries from fixed values.
type counterDriver struct {
	last     string
	queryErr error
	execErr  error
}

var drivers atomic.Int64

func openCounters(t *testing.T, d *counterDriver) *sql.Tx {
	t.Helper()

	name := fmt.Sprintf("counters-%d", drivers.Add(1))
	sql.Register(name, d)

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback() })

	return tx
}

func (d *counterDriver) Open(string) (driver.Conn, error) { return &counterConn{d: d}, nil }

type counterConn struct{ d *counterDriver }

func (c *counterConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *counterConn) Close() error                        { return nil }
func (c *counterConn) Begin() (driver.Tx, error)           { return counterTx{}, nil }

func (c *counterConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	if c.d.queryErr != nil {
		return nil, c.d.queryErr
	}

	return &counterRows{value: c.d.last}, nil
}

func (c *counterConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	if c.d.execErr != nil {
		return nil, c.d.execErr
	}

	return driver.RowsAffected(1), nil
}

type counterTx struct{}

func (counterTx) Commit() error   { return nil }
func (counterTx) Rollback() error { return nil }

type counterRows struct {
	value string
	done  bool
}

func (r *counterRows) Columns() []string { return []string{"last_identifier"} }
func (r *counterRows) Close() error      { return nil }

func (r *counterRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}

	r.done = true
	dest[0] = r.value

	return nil
}

func TestAllocate(t *testing.T) {
	type testCase struct {
		name      string
		driver    *counterDriver
		want      string
		wantKind  error
		wantRetry bool
	}

	tests := []testCase{
		{
			name:   "AdvancesCounter",
			driver: &counterDriver{last: "FAC0000041"},
			want:   "FAC0000042",
		},
		{
			name:      "LockConflictIsRetryable",
			driver:    &counterDriver{queryErr: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}},
			wantKind:  apperr.ErrConcurrency,
			wantRetry: true,
		},
		{
			name:      "DeadlockOnUpdateIsRetryable",
			driver:    &counterDriver{last: "FAC0000041", execErr: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}},
			wantKind:  apperr.ErrConcurrency,
			wantRetry: true,
		},
		{
			name:     "MissingCounter",
			driver:   &counterDriver{queryErr: sql.ErrNoRows},
			wantKind: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := openCounters(t, tt.driver)

			got, err := store.Allocate(context.Background(), tx, ident.KindInvoice)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Equal(t, tt.wantRetry, apperr.Retryable(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllocate_ShipmentNeedsNoCounter(t *testing.T) {
	got, err := store.Allocate(context.Background(), nil, ident.KindShipment)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "EXP"), got)
}
