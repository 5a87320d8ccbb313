package catalog

import (
	"net/http"

	"go-hena-store/internal/pkg/apperror"
	"go-hena-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(c *gin.Context) {
	switch {
	case c.Query("featured") == "true":
		response.Success(c, http.StatusOK, h.service.Featured())
	case c.Query("new") == "true":
		response.Success(c, http.StatusOK, h.service.NewArrivals())
	default:
		response.Success(c, http.StatusOK, h.service.All())
	}
}

func (h *Handler) Detail(c *gin.Context) {
	p, err := h.service.ByID(c.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ByCategory(c *gin.Context) {
	category := Category(c.Param("category"))

	if sub := c.Query("subcategory"); sub != "" {
		products, err := h.service.BySubcategory(category, Subcategory(sub))
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
		response.Success(c, http.StatusOK, products)
		return
	}

	products, err := h.service.ByCategory(category)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, products)
}

func (h *Handler) Search(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Search(c.Query("q")))
}
