package event

import (
	"errors"
	"net/http"
	"strconv"

	"salescrm/internal/domain"
	"salescrm/internal/middleware"
	"salescrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/:event_id", h.Get)
		events.PUT("/:event_id", middleware.Authorize(domain.EntityEvent, domain.ActionUpdate), h.Update)
		events.PATCH("/:event_id", middleware.Authorize(domain.EntityEvent, domain.ActionPartialUpdate), h.Update)
		events.DELETE("/:event_id", middleware.Authorize(domain.EntityEvent, domain.ActionDelete), h.Delete)
	}

	rg.GET("/users/:user_id/events", h.ListUnderUser)
	rg.GET("/customers/:customer_id/events", h.ListUnderCustomer)
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

func (h *Handler) ListUnderCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customer_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid customer ID")
		return
	}
	h.list(c, domain.UnderCustomer(customerID))
}

func (h *Handler) list(c *gin.Context, pc domain.PathContext) {
	f := domain.EventFilter{
		LastName:     c.Query("last_name"),
		CompagnyName: c.Query("compagny_name"),
		Email:        c.Query("email"),
		Date:         c.Query("date"),
	}

	events, err := h.service.List(c.Request.Context(), middleware.CurrentPrincipal(c), pc, f)
	if err != nil {
		fail(c, err, "Failed to list events")
		return
	}

	items := make([]ListItem, 0, len(events))
	for _, e := range events {
		items = append(items, toListItem(e))
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	e, err := h.service.Get(c.Request.Context(), middleware.CurrentPrincipal(c), id)
	if err != nil {
		fail(c, err, "Failed to fetch event")
		return
	}
	response.Success(c, http.StatusOK, toDetail(e))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), middleware.CurrentPrincipal(c), id, req)
	if err != nil {
		fail(c, err, "Failed to update event")
		return
	}
	response.Success(c, http.StatusOK, toDetail(e))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentPrincipal(c), id); err != nil {
		fail(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("event_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid event ID")
		return 0, false
	}
	return id, true
}

func fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", domain.ErrAccessDenied.Error())
	case errors.Is(err, domain.ErrManagerNoRecords):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "This user is a manager, therefore he is in charge of no event")
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, domain.ErrEventFinished):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.ErrEventFinished.Error())
	case errors.Is(err, ErrBadEventDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
