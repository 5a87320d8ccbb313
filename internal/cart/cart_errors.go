package cart

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
)

var (
	ErrCartPersistence = apperror.New(
		apperror.KindPersistence,
		apperror.CodePersistence,
		"failed to persist cart",
		http.StatusInternalServerError,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.KindValidation,
		apperror.CodeInvalidInput,
		"quantity must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidIndex = apperror.New(
		apperror.KindValidation,
		apperror.CodeInvalidInput,
		"invalid item index",
		http.StatusBadRequest,
	)

	ErrInvalidSize = apperror.New(
		apperror.KindValidation,
		apperror.CodeInvalidInput,
		"size is not offered for this product",
		http.StatusBadRequest,
	)

	ErrInvalidVariant = apperror.New(
		apperror.KindValidation,
		apperror.CodeInvalidInput,
		"variant is not offered for this product",
		http.StatusBadRequest,
	)
)
