package database

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelegateTxManager_WithinTransaction(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		txFn TxFunc

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "commit on success",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				_, err := executor.Exec(ctx, "UPDATE accounts SET deposit = $1 WHERE id = $2", int64(10), int64(1))
				return err
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectExec("UPDATE").
					WithArgs(int64(10), int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
		},
		{
			name: "rollback on logic error",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return assert.AnError
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
		{
			name: "begin error",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				panic("txFn must not run when begin fails")
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "commit error",
			txFn: func(ctx context.Context, executor QueryExecuter) error {
				return nil
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			txManager := NewDelegateTxManager(mock, slog.New(slog.NewTextHandler(io.Discard, nil)))
			err = txManager.WithinTransaction(t.Context(), tt.txFn)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
