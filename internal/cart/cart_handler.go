package cart

import (
	"net/http"
	"strconv"

	"go-hena-store/internal/catalog"
	"go-hena-store/internal/pkg/apperror"
	"go-hena-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager *Manager
	catalog catalog.Service
}

func NewHandler(m *Manager, c catalog.Service) *Handler {
	return &Handler{manager: m, catalog: c}
}

func (h *Handler) engine(c *gin.Context) *Engine {
	return h.manager.Engine(c, c.GetString("session_id"))
}

func (h *Handler) Detail(c *gin.Context) {
	eng := h.engine(c)
	response.Success(c, http.StatusOK, toCartResponse(eng.Items()))
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid add item request", err.Error())
		return
	}

	product, err := h.catalog.ByID(req.ProductID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if req.Size != "" && !product.HasSize(req.Size) {
		response.Error(c, ErrInvalidSize.HTTPStatus, ErrInvalidSize.Code, ErrInvalidSize.Message, nil)
		return
	}

	var variant *catalog.Variant
	if req.VariantID != "" {
		v, ok := product.VariantByID(req.VariantID)
		if !ok {
			response.Error(c, ErrInvalidVariant.HTTPStatus, ErrInvalidVariant.Code, ErrInvalidVariant.Message, nil)
			return
		}
		variant = &v
	}

	eng := h.engine(c)
	if err := eng.AddToCart(c, product, req.Quantity, req.Size, variant); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, toCartResponse(eng.Items()))
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, ErrInvalidIndex.HTTPStatus, ErrInvalidIndex.Code, ErrInvalidIndex.Message, nil)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid quantity request", err.Error())
		return
	}

	eng := h.engine(c)
	if err := eng.UpdateQuantity(c, index, req.Quantity); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toCartResponse(eng.Items()))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, ErrInvalidIndex.HTTPStatus, ErrInvalidIndex.Code, ErrInvalidIndex.Message, nil)
		return
	}

	eng := h.engine(c)
	if err := eng.RemoveFromCart(c, index); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toCartResponse(eng.Items()))
}

func (h *Handler) Clear(c *gin.Context) {
	eng := h.engine(c)
	if err := eng.ClearCart(c); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toCartResponse(eng.Items()))
}

func (h *Handler) Saved(c *gin.Context) {
	eng := h.engine(c)
	items := eng.SavedItems()
	res := SavedItemsResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, li := range items {
		res.Items = append(res.Items, toItemResponse(li))
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) SaveForLater(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, ErrInvalidIndex.HTTPStatus, ErrInvalidIndex.Code, ErrInvalidIndex.Message, nil)
		return
	}

	eng := h.engine(c)
	if err := eng.SaveForLater(c, index); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toCartResponse(eng.Items()))
}

func (h *Handler) MoveToCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, ErrInvalidIndex.HTTPStatus, ErrInvalidIndex.Code, ErrInvalidIndex.Message, nil)
		return
	}

	eng := h.engine(c)
	if err := eng.MoveToCart(c, index); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toCartResponse(eng.Items()))
}
