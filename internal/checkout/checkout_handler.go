package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hena-store/internal/cart"
	"go-hena-store/internal/pkg/apperror"
	"go-hena-store/internal/pkg/response"
)

type Handler struct {
	service Service
	carts   *cart.Manager
	logger  *zap.Logger
}

func NewHandler(svc Service, carts *cart.Manager, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("checkout.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkout.handler")
	}
	return &Handler{service: svc, carts: carts, logger: l}
}

// POST /checkout
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID := c.GetString("session_id")
	userID := c.GetString("user_id")
	accessToken := c.GetString("access_token")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	eng := h.carts.Engine(c.Request.Context(), sessionID)

	res, err := h.service.PlaceOrder(c.Request.Context(), PlaceOrderInput{
		SessionID:   sessionID,
		UserID:      userID,
		AccessToken: accessToken,
		Engine:      eng,
		Request:     req,
	})
	if err != nil {
		h.logger.Error("http place order failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)

		// An empty cart sends the shopper back to browsing rather
		// than leaving them on a dead checkout page.
		var details any
		if err == ErrCartEmpty {
			details = gin.H{"redirect": "/"}
		}
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// GET /checkout/session
func (h *Handler) SessionState(c *gin.Context) {
	sess := h.service.Session(c.GetString("session_id"))

	response.Success(c, http.StatusOK, SessionResponse{
		State:     string(sess.State()),
		LastError: sess.LastError(),
	})
}

// POST /checkout/acknowledge
func (h *Handler) Acknowledge(c *gin.Context) {
	h.service.Session(c.GetString("session_id")).Reset()
	response.Success(c, http.StatusOK, gin.H{"state": string(StateCollecting)})
}
