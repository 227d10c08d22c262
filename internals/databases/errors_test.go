package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"wrapped not found", fmt.Errorf("take: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"deadline", context.DeadlineExceeded, ErrStoreUnavailable},
		{"bad conn", driver.ErrBadConn, ErrStoreUnavailable},
		{"closed pool", errors.New("sql: database is closed"), ErrStoreUnavailable},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, ErrDuplicate},
		{"pgx not null", &pgconn.PgError{Code: "23502"}, ErrValidationRejected},
		{"pgx bad text repr", &pgconn.PgError{Code: "22P02"}, ErrValidationRejected},
		{"pgx undefined column", &pgconn.PgError{Code: "42703"}, ErrQueryRejected},
		{"pgx admin shutdown", &pgconn.PgError{Code: "57P01"}, ErrStoreUnavailable},
		{"pq unique", &pq.Error{Code: "23505"}, ErrDuplicate},
		{"pq connection failure", &pq.Error{Code: "08006"}, ErrStoreUnavailable},
		{"pq undefined table", &pq.Error{Code: "42P01"}, ErrQueryRejected},
		{"sqlite unique", errors.New("UNIQUE constraint failed: news.news_slug"), ErrDuplicate},
		{"anything else", errors.New("syntax error near FROM"), ErrQueryRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("news.list", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err, "original error must stay reachable")
		})
	}
}

func TestClassifyKeepsExistingCategory(t *testing.T) {
	orig := NotFound("news.update")
	assert.Same(t, orig, Classify("news.get", orig))
	assert.NoError(t, Classify("noop", nil))
}

func TestIsFallbackable(t *testing.T) {
	assert.True(t, IsFallbackable(Classify("x", driver.ErrBadConn)))
	assert.True(t, IsFallbackable(Classify("x", &pgconn.PgError{Code: "42P01"})))
	assert.False(t, IsFallbackable(NotFound("x")))
	assert.False(t, IsFallbackable(Rejected("x", errors.New("title required"))))
	assert.False(t, IsFallbackable(errors.New("plain")))
}

func TestStoreErrorMessage(t *testing.T) {
	err := Classify("news.create", &pgconn.PgError{Code: "23505", Message: "duplicate key value"})
	assert.Contains(t, err.Error(), "news.create: duplicate record")
}
