package payrollerrors

import (
	"net/http"

	"github.com/headhr-blip/worknest/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be a four digit year",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrDuplicatePeriod = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payroll record is already paid",
		http.StatusConflict,
	)
	ErrMissingTransactionRef = apperror.New(
		apperror.CodeInvalidInput,
		"transaction_ref is required",
		http.StatusBadRequest,
	)
	ErrUploadsDisabled = apperror.New(
		apperror.CodeServiceUnavailable,
		"file storage is not configured, payslips cannot be stored",
		http.StatusServiceUnavailable,
	)
)
