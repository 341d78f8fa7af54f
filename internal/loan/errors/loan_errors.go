package loanerrors

import (
	"net/http"

	"github.com/headhr-blip/worknest/internal/shared/apperror"
)

var (
	ErrInvalidPrincipal = apperror.New(
		apperror.CodeInvalidInput,
		"loan principal must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidTenure = apperror.New(
		apperror.CodeInvalidInput,
		"loan tenure must be at least one month",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"interest rate cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrLoanTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan type not found",
		http.StatusNotFound,
	)
	ErrLoanTypeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"loan type is not active",
		http.StatusBadRequest,
	)
	ErrAmountExceedsLimit = apperror.New(
		apperror.CodeInvalidInput,
		"requested amount exceeds the loan type limit",
		http.StatusBadRequest,
	)
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"loan not found",
		http.StatusNotFound,
	)
)
