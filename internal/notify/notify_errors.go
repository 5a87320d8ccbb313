package notify

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
)

var ErrNotificationFailed = apperror.New(
	apperror.KindSubmission,
	apperror.CodeSubmissionFailed,
	"failed to process order",
	http.StatusBadGateway,
)
