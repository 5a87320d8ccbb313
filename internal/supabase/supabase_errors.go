package supabase

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
)

var ErrUnauthorized = apperror.New(
	apperror.KindValidation,
	apperror.CodeUnauthorized,
	"not authenticated",
	http.StatusUnauthorized,
)
