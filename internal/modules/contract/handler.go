package contract

import (
	"encoding/json"
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
	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.List)
		contracts.POST("", middleware.Authorize(domain.EntityContract, domain.ActionCreate), h.Create)
		contracts.GET("/:contract_id", h.Get)
		contracts.PUT("/:contract_id", middleware.Authorize(domain.EntityContract, domain.ActionUpdate), h.Update)
		contracts.PATCH("/:contract_id", middleware.Authorize(domain.EntityContract, domain.ActionPartialUpdate), h.Update)
		// Contracts are only removed through the event cascade; the
		// policy denies this for every role.
		contracts.DELETE("/:contract_id", middleware.Authorize(domain.EntityContract, domain.ActionDelete), h.Delete)

		// The sign sub-path accepts POST only; any other verb is an
		// access-denied error regardless of role.
		contracts.Any("/:contract_id/sign", h.Sign)

		contracts.GET("/:contract_id/events", h.ListEvents)
		contracts.POST("/:contract_id/events", middleware.Authorize(domain.EntityEvent, domain.ActionCreate), h.SignViaEvents)
	}

	rg.GET("/users/:user_id/contracts", h.ListUnderUser)
	rg.GET("/customers/:customer_id/contracts", h.ListUnderCustomer)
	// Creation is only possible from the top-level path.
	rg.POST("/customers/:customer_id/contracts", h.CreateRejected)
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
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	contracts, err := h.service.List(c.Request.Context(), middleware.CurrentPrincipal(c), pc, f)
	if err != nil {
		fail(c, err, "Failed to list contracts")
		return
	}

	items := make([]ListItem, 0, len(contracts))
	for _, ct := range contracts {
		items = append(items, toListItem(ct))
	}
	response.Success(c, http.StatusOK, items)
}

// parseFilter reads the query parameters; malformed numeric bounds are
// a client error, never silently dropped.
func parseFilter(c *gin.Context) (domain.ContractFilter, bool) {
	f := domain.ContractFilter{
		LastName:     c.Query("last_name"),
		CompagnyName: c.Query("compagny_name"),
		Date:         c.Query("date"),
	}

	if raw := c.Query("due_low"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "due_low must be a number")
			return f, false
		}
		f.DueLow = &v
	}
	if raw := c.Query("due_high"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "due_high must be a number")
			return f, false
		}
		f.DueHigh = &v
	}
	return f, true
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	ct, err := h.service.Get(c.Request.Context(), middleware.CurrentPrincipal(c), id)
	if err != nil {
		fail(c, err, "Failed to fetch contract")
		return
	}
	response.Success(c, http.StatusOK, toDetail(ct, h.service.CustomerName(c.Request.Context(), ct)))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request fields", fields)
		return
	}

	ct, err := h.service.Create(c.Request.Context(), middleware.CurrentPrincipal(c), req)
	if err != nil {
		fail(c, err, "Failed to create contract")
		return
	}
	response.Success(c, http.StatusCreated, toDetail(ct, h.service.CustomerName(c.Request.Context(), ct)))
}

// CreateRejected answers contract creation attempts on nested paths.
func (h *Handler) CreateRejected(c *gin.Context) {
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "Method not allowed with this path")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := checkUpdatableFields(raw); err != nil {
		if errors.Is(err, ErrImmutableFields) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrImmutableFields.Error())
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var req UpdateContractRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ct, err := h.service.Update(c.Request.Context(), middleware.CurrentPrincipal(c), id, req)
	if err != nil {
		fail(c, err, "Failed to update contract")
		return
	}
	response.Success(c, http.StatusOK, toDetail(ct, h.service.CustomerName(c.Request.Context(), ct)))
}

// Delete is unreachable for every role; the policy middleware rejects
// first. Kept as a terminal guard.
func (h *Handler) Delete(c *gin.Context) {
	response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can not erase a contract")
}

func (h *Handler) Sign(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Method not allowed")
		return
	}

	p := middleware.CurrentPrincipal(c)
	if !domain.Allow(p.Role, c.Request.Method, domain.EntityEvent, domain.ActionCreate) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to perform this action")
		return
	}

	h.sign(c)
}

// SignViaEvents is the historical creation path: posting an event under
// a contract runs the same signing transition.
func (h *Handler) SignViaEvents(c *gin.Context) {
	h.sign(c)
}

func (h *Handler) sign(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	var req SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request fields", fields)
		return
	}

	ct, e, err := h.service.Sign(c.Request.Context(), middleware.CurrentPrincipal(c), id, req)
	if err != nil {
		fail(c, err, "Failed to sign contract")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"contract": toDetail(ct, h.service.CustomerName(c.Request.Context(), ct)),
		"event":    e,
	})
}

func (h *Handler) ListEvents(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}

	events, err := h.service.EventsOf(c.Request.Context(), middleware.CurrentPrincipal(c), id)
	if err != nil {
		fail(c, err, "Failed to list events")
		return
	}
	response.Success(c, http.StatusOK, events)
}

func contractID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("contract_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid contract ID")
		return 0, false
	}
	return id, true
}

func fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", domain.ErrAccessDenied.Error())
	case errors.Is(err, domain.ErrManagerNoRecords):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "This user is a manager, therefore he is in charge of no contract")
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, domain.ErrAlreadySigned):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.ErrAlreadySigned.Error())
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrWrongRole),
		errors.Is(err, ErrBadEventDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
