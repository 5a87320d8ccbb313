package order

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hena-store/internal/pkg/apperror"
	"go-hena-store/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, logger: l}
}

// GET /orders
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated", nil)
		return
	}

	orders, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("http list orders failed", zap.String("user_id", userID), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// GET /orders/:number
func (h *Handler) Detail(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated", nil)
		return
	}

	res, err := h.service.Detail(c.Request.Context(), userID, c.Param("number"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res)
}
