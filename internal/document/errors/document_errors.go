package documenterrors

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
	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"file is required",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"file exceeds the maximum allowed size",
		http.StatusBadRequest,
	)
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"document not found",
		http.StatusNotFound,
	)
	ErrUploadsDisabled = apperror.New(
		apperror.CodeServiceUnavailable,
		"file storage is not configured",
		http.StatusServiceUnavailable,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"document upload failed",
		http.StatusServiceUnavailable,
	)
)
