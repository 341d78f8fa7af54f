package expenseerrors

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
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"expense category not found",
		http.StatusNotFound,
	)
	ErrCategoryInactive = apperror.New(
		apperror.CodeInvalidInput,
		"expense category is not active",
		http.StatusBadRequest,
	)
	ErrAmountExceedsLimit = apperror.New(
		apperror.CodeInvalidInput,
		"amount exceeds the category limit",
		http.StatusBadRequest,
	)
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"expense claim not found",
		http.StatusNotFound,
	)
	ErrInvalidExpenseDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid expense date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
