package brancherrors

import (
	"net/http"

	"github.com/headhr-blip/worknest/internal/shared/apperror"
)

var (
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"branch not found",
		http.StatusNotFound,
	)
	ErrBranchNameExists = apperror.New(
		apperror.CodeConflict,
		"branch with this name already exists",
		http.StatusConflict,
	)
)
