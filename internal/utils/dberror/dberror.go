// Package dberror classifies constraint violations reported by the Postgres
// and SQLite drivers.
package dberror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"

	sqliteConstraint           = 19
	sqliteConstraintForeignKey = 787
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// sqliteError matches the extended result code carried by the pure-Go SQLite
// driver errors. Older builds report only the primary code (19), so the
// message decides the constraint kind there.
type sqliteError interface {
	Code() int
}

func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr sqliteError
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqliteConstraintForeignKey ||
			code == sqliteConstraint && strings.Contains(err.Error(), "FOREIGN KEY")
	}
	return false
}

func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr sqliteError
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey ||
			code == sqliteConstraint && strings.Contains(err.Error(), "UNIQUE")
	}
	return false
}
