package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Taksonomi error Record Store. Service selalu mengembalikan salah satu ini (dibungkus).
var (
	ErrStoreUnavailable   = errors.New("record store unavailable")
	ErrQueryRejected      = errors.New("query rejected by record store")
	ErrNotFound           = errors.New("record not found")
	ErrValidationRejected = errors.New("validation rejected")
	ErrDuplicate          = errors.New("duplicate record")
)

// StoreError membawa kategori + error asli; errors.Is cocok dengan keduanya.
type StoreError struct {
	Kind error
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Rejected membungkus error validasi input (DTO) sebagai ValidationRejected.
func Rejected(op string, err error) error {
	return &StoreError{Kind: ErrValidationRejected, Op: op, Err: err}
}

// NotFound dipakai service ketika query sukses tapi tidak ada baris yang cocok.
func NotFound(op string) error {
	return &StoreError{Kind: ErrNotFound, Op: op}
}

// IsFallbackable: kondisi yang memicu Fallback Reader (berita).
func IsFallbackable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrQueryRejected)
}

// Classify memetakan error gorm/pgx/lib-pq ke taksonomi. nil tetap nil.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUnavailable(err) {
		return ErrStoreUnavailable
	}

	// pgx
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return kindFromSQLState(pgErr.Code)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return kindFromSQLState(string(pqErr.Code))
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return ErrDuplicate
	}
	return ErrQueryRejected
}

func kindFromSQLState(code string) error {
	switch {
	case code == "23505":
		return ErrDuplicate
	case code == "23502", code == "23514", strings.HasPrefix(code, "22"):
		return ErrValidationRejected
	case strings.HasPrefix(code, "08"), code == "57P01", code == "57P02", code == "57P03", code == "53300":
		return ErrStoreUnavailable
	default:
		return ErrQueryRejected
	}
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"database is closed",
		"no such host",
		"broken pipe",
		"connection reset",
		"failed to connect",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
