package customer

import (
	"errors"
	"net/http"
	"strconv"

	"salescrm/internal/domain"
	"salescrm/internal/middleware"
	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.POST("", middleware.Authorize(domain.EntityCustomer, domain.ActionCreate), h.Create)
		customers.GET("/:customer_id", h.Get)
		customers.PUT("/:customer_id", middleware.Authorize(domain.EntityCustomer, domain.ActionUpdate), h.Update)
		customers.PATCH("/:customer_id", middleware.Authorize(domain.EntityCustomer, domain.ActionPartialUpdate), h.Update)
		customers.DELETE("/:customer_id", middleware.Authorize(domain.EntityCustomer, domain.ActionDelete), h.Delete)
	}

	rg.GET("/users/:user_id/customers", h.ListUnderUser)
}

func (h *Handler) List(c *gin.Context) {
	h.list(c, domain.TopLevel())
}

func (h *Handler) ListUnderUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	h.list(c, domain.UnderUser(userID))
}

func (h *Handler) list(c *gin.Context, pc domain.PathContext) {
	f := domain.CustomerFilter{
		LastName:     c.Query("last_name"),
		CompagnyName: c.Query("compagny_name"),
		Email:        c.Query("email"),
	}

	customers, err := h.service.List(c.Request.Context(), middleware.CurrentPrincipal(c), pc, f)
	if err != nil {
		fail(c, err, "Failed to list customers")
		return
	}

	items := make([]ListItem, 0, len(customers))
	for _, cu := range customers {
		items = append(items, toListItem(cu))
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	cu, err := h.service.Get(c.Request.Context(), middleware.CurrentPrincipal(c), id)
	if err != nil {
		fail(c, err, "Failed to fetch customer")
		return
	}
	response.Success(c, http.StatusOK, toDetail(cu))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request fields", fields)
		return
	}

	cu, err := h.service.Create(c.Request.Context(), middleware.CurrentPrincipal(c), req)
	if err != nil {
		fail(c, err, "Failed to create customer")
		return
	}
	response.Success(c, http.StatusCreated, toDetail(cu))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cu, err := h.service.Update(c.Request.Context(), middleware.CurrentPrincipal(c), id, req)
	if err != nil {
		fail(c, err, "Failed to update customer")
		return
	}
	response.Success(c, http.StatusOK, toDetail(cu))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentPrincipal(c), id); err != nil {
		fail(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

func customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("customer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return 0, false
	}
	return id, true
}

func fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", domain.ErrAccessDenied.Error())
	case errors.Is(err, domain.ErrManagerNoRecords):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "This user is a manager, therefore he is in charge of no customer")
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
	case errors.Is(err, domain.ErrNameFieldsEmpty):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.ErrNameFieldsEmpty.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
