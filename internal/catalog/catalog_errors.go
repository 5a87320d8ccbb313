package catalog

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.KindNotFound,
		apperror.CodeNotFound,
		"product not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = apperror.New(
		apperror.KindNotFound,
		apperror.CodeNotFound,
		"category not found",
		http.StatusNotFound,
	)
)
