package checkout

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.KindValidation,
		apperror.CodeInvalidState,
		"cart is empty",
		http.StatusBadRequest,
	)

	ErrSubmissionInFlight = apperror.New(
		apperror.KindSubmission,
		apperror.CodeConflict,
		"an order submission is already in progress",
		http.StatusConflict,
	)

	ErrInvalidCheckout = apperror.New(
		apperror.KindValidation,
		apperror.CodeInvalidInput,
		"invalid checkout request",
		http.StatusBadRequest,
	)

	ErrShippingInfoSave = apperror.New(
		apperror.KindSubmission,
		apperror.CodeSubmissionFailed,
		"failed to save shipping info",
		http.StatusBadGateway,
	)
)
