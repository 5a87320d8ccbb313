package order

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.KindNotFound,
		apperror.CodeNotFound,
		"order not found",
		http.StatusNotFound,
	)

	ErrDuplicateOrder = apperror.New(
		apperror.KindValidation,
		apperror.CodeConflict,
		"order already recorded",
		http.StatusConflict,
	)

	ErrOrderPersistence = apperror.New(
		apperror.KindPersistence,
		apperror.CodePersistence,
		"failed to record order",
		http.StatusInternalServerError,
	)
)
