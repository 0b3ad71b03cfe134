package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, draft domain.EventDraft) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, draft domain.EventDraft) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	Attendees(ctx context.Context, eventID string) ([]*domain.Registration, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, userID, eventID string, form domain.RegistrationForm) (*domain.Registration, error)
	ListEventIDs(ctx context.Context, userID string) ([]string, error)
}

type UserSvc interface {
	SignUp(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	userService         UserSvc
	tokens              TokenIssuer
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	userService UserSvc,
	tokens TokenIssuer,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		userService:         userService,
		tokens:              tokens,
	}
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), domain.CreateUserInput{
		Name:           req.Name,
		Username:       req.Username,
		Password:       req.Password,
		Role:           domain.RoleStudent,
		USN:            req.USN,
		Department:     req.Department,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *Handler) respondWithToken(c *ginext.Context, status int, user *domain.User) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(status, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req.ToDraft())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid event id")
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, req.ToDraft())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid event id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAllEvents(c *ginext.Context) {
	n, err := h.eventService.DeleteAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteAllResponse{Deleted: n})
}

func (h *Handler) ListAttendees(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "invalid event id")
	if !ok {
		return
	}

	regs, err := h.eventService.Attendees(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Registrations

func (h *Handler) GetUserRegistrations(c *ginext.Context) {
	userID, ok := uuidParam(c, "id", "invalid user id")
	if !ok {
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil || (claims.UserID() != userID && !claims.IsAdmin()) {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	ids, err := h.registrationService.ListEventIDs(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, dto.RegistrationsResponse{EventIDs: ids})
}

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	userID, ok := uuidParam(c, "id", "invalid user id")
	if !ok {
		return
	}

	// регистрироваться можно только за себя
	claims := middleware.ClaimsFrom(c)
	if claims == nil || claims.UserID() != userID {
		h.handleError(c, domain.ErrForbidden)
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.Register(c.Request.Context(), userID, req.EventID, req.Form.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func uuidParam(c *ginext.Context, name, msg string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return v, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
