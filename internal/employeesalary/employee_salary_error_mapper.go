package employeesalary

import (
	"context"
	"errors"

	employeesalaryerrors "go-salary/internal/employeesalary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	return employeesalaryerrors.StoreWrite(err)
}

func mapReadError(err error) error {
	if err == nil {
		return nil
	}
	return employeesalaryerrors.StoreRead(err)
}

// storeErrorFields describes a store failure for the logs: SQLSTATE and
// constraint for Postgres errors, and whether the failure was a timeout.
func storeErrorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		fields = append(fields, zap.String("sqlstate", pgErr.Code))
		if pgErr.ConstraintName != "" {
			fields = append(fields, zap.String("constraint", pgErr.ConstraintName))
		}
	}

	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		fields = append(fields, zap.Bool("timeout", true))
	}
	return fields
}
