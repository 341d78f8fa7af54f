package compensationerrors

import (
	"net/http"

	"github.com/headhr-blip/worknest/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidFrequency = apperror.New(
		apperror.CodeInvalidInput,
		"payment_frequency must be monthly, weekly or biweekly",
		http.StatusBadRequest,
	)
	ErrNegativeComponent = apperror.New(
		apperror.CodeInvalidInput,
		"compensation components cannot be negative",
		http.StatusBadRequest,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"compensation profile not found",
		http.StatusNotFound,
	)
	ErrProfileExists = apperror.New(
		apperror.CodeConflict,
		"a compensation profile already exists for this user",
		http.StatusConflict,
	)
	ErrHistoryEffectiveDateExists = apperror.New(
		apperror.CodeConflict,
		"a salary change is already recorded for this effective date",
		http.StatusConflict,
	)
)
