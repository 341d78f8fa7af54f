package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/headhr-blip/worknest/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_email":
			return employeeerrors.ErrEmailExists
		case "uq_employee_profile_user", "uq_employee_profile_code":
			return employeeerrors.ErrProfileExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_users_email") {
			return employeeerrors.ErrEmailExists
		}
		if strings.Contains(errMsg, "uq_employee_profile") {
			return employeeerrors.ErrProfileExists
		}
	}

	return err
}
