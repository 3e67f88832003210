package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// PostgreSQL SQLSTATE codes the adapter classifies.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeAdminShutdown        = "57P01"
	codeCrashShutdown        = "57P02"
	codeCannotConnectNow     = "57P03"
)

// MapError converts pgx/pgconn errors to domain errors. entity and id only
// decorate the message; id 0 means "no id yet" and is omitted.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != 0 {
		prefix = fmt.Sprintf("%s %d", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return fmt.Errorf("%s: %w: %w (%s)", prefix, domain.ErrAlreadyExists, domain.ErrSlugConflict, pgErr.ConstraintName)
			}
			return fmt.Errorf("%s: %w (%s)", prefix, domain.ErrAlreadyExists, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", prefix, domain.ErrNotFound, pgErr.ConstraintName)
		case codeCheckViolation, codeNotNullViolation:
			return fmt.Errorf("%s: %w (%s)", prefix, domain.ErrValidation, pgErr.Message)
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%s: %w (%s)", prefix, domain.ErrConflict, pgErr.Code)
		case codeAdminShutdown, codeCrashShutdown, codeCannotConnectNow:
			return fmt.Errorf("%s: %w (%s)", prefix, domain.ErrStorageUnavailable, pgErr.Code)
		}
		if strings.HasPrefix(pgErr.Code, "08") { // connection_exception class
			return fmt.Errorf("%s: %w (%s)", prefix, domain.ErrStorageUnavailable, pgErr.Code)
		}
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %v", prefix, domain.ErrStorageUnavailable, err)
	}

	return fmt.Errorf("%s: %w", prefix, err)
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// Nothing reached the server, so the statement did not run.
	return pgconn.SafeToRetry(err)
}
