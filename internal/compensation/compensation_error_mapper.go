package compensation

import (
	"errors"
	"strings"

	compensationerrors "github.com/headhr-blip/worknest/internal/compensation/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_history_effective" {
			return compensationerrors.ErrHistoryEffectiveDateExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_history_effective") {
		return compensationerrors.ErrHistoryEffectiveDateExists
	}

	return err
}

func isDuplicateProfile(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_compensation_user"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_compensation_user")
}
