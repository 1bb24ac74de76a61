package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pizzametrics/internal/domain"
	"pizzametrics/internal/middleware"
	"pizzametrics/internal/service"
	"pizzametrics/internal/validation"
)

var (
	errInvalidBody       = map[string]string{"error": "invalid request body"}
	errNameRequired      = map[string]string{"error": "name is required"}
	errEmailRequired     = map[string]string{"error": "email is required"}
	errInvalidEmail      = map[string]string{"error": "invalid email format"}
	errPasswordRequired  = map[string]string{"error": "password is required"}
	errPasswordTooShort  = map[string]string{"error": "password is too short"}
	errFieldTooLong      = map[string]string{"error": "field exceeds maximum length"}
	errInvalidCreds      = map[string]string{"error": "invalid email or password"}
	errEmailTaken        = map[string]string{"error": "email already registered"}
	errAuthFailed        = map[string]string{"error": "failed to authenticate"}
	errItemsRequired     = map[string]string{"error": "items is required"}
	errTooManyItems      = map[string]string{"error": "order exceeds maximum number of items"}
	errFranchiseRequired = map[string]string{"error": "franchiseId and storeId are required"}
	errUnknownMenuItem   = map[string]string{"error": "unknown menu item"}
	errMenuFailed        = map[string]string{"error": "failed to get menu"}
	errOrderFailed       = map[string]string{"error": "failed to create order"}
	errInvalidPage       = map[string]string{"error": "page must be a number"}
	errTitleRequired     = map[string]string{"error": "title is required"}
	errInvalidPrice      = map[string]string{"error": "price must be a positive number"}
	errForbidden         = map[string]string{"error": "unable to add menu item"}
	errMenuItemExists    = map[string]string{"error": "menu item already exists"}
	errAddMenuFailed     = map[string]string{"error": "failed to add menu item"}
	errOrdersFailed      = map[string]string{"error": "failed to get orders"}
	respHealthDown       = map[string]string{"status": "unavailable"}
	errUnknownEndpoint   = map[string]string{"message": "unknown endpoint"}
	respLogout           = map[string]string{"message": "logout successful"}
	respHealthOK         = map[string]string{"status": "ok"}
)

const healthTimeout = 2 * time.Second

type Handler struct {
	auth         AuthService
	orders       OrderService
	credentials  CredentialsValidator
	orderChecker OrderValidator
	metrics      SnapshotSource
	db           HealthChecker
	logger       *slog.Logger
	version      string
}

func New(
	auth AuthService,
	orders OrderService,
	credentials CredentialsValidator,
	orderChecker OrderValidator,
	metrics SnapshotSource,
	db HealthChecker,
	logger *slog.Logger,
	version string,
) *Handler {
	return &Handler{
		auth:         auth,
		orders:       orders,
		credentials:  credentials,
		orderChecker: orderChecker,
		metrics:      metrics,
		db:           db,
		logger:       logger,
		version:      version,
	}
}

// Register mounts every route. loginLimiter guards PUT /api/auth only.
func (h *Handler) Register(e *echo.Echo, loginLimiter echo.MiddlewareFunc) {
	e.GET("/", h.Welcome)

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/metrics", h.Metrics)
	api.GET("/docs", h.Docs)

	api.POST("/auth", h.RegisterUser)
	api.PUT("/auth", h.Login, loginLimiter)
	api.DELETE("/auth", h.Logout, middleware.RequireUser())

	api.GET("/order/menu", h.Menu)
	api.PUT("/order/menu", h.AddMenuItem, middleware.RequireUser())
	api.GET("/order", h.Orders, middleware.RequireUser())
	api.POST("/order", h.CreateOrder, middleware.RequireUser())

	e.RouteNotFound("/*", h.NotFound)
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "welcome to JWT Pizza",
		"version": h.version,
	})
}

// Health reports 503 while the database is unreachable.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, respHealthDown)
	}
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Docs(c echo.Context) error {
	return c.JSON(http.StatusOK, Docs{Version: h.version, Endpoints: endpoints})
}

func (h *Handler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errUnknownEndpoint)
}

func (h *Handler) Metrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.metrics.Snapshot())
}

func (h *Handler) RegisterUser(c echo.Context) error {
	var req domain.RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.credentials.ValidateRegistration(req.Name, req.Email, req.Password); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.auth.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errEmailTaken)
		}
		h.logger.Error("failed to register user", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAuthFailed)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.credentials.ValidateLogin(req.Email, req.Password); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.auth.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errInvalidCreds)
		}
		h.logger.Error("failed to log in", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAuthFailed)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	userID, _ := middleware.UserID(c)
	h.auth.Logout(middleware.SessionToken(c), userID)
	return c.JSON(http.StatusOK, respLogout)
}

func (h *Handler) Menu(c echo.Context) error {
	menu, err := h.orders.Menu(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to get menu", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errMenuFailed)
	}
	return c.JSON(http.StatusOK, menu)
}

func (h *Handler) AddMenuItem(c echo.Context) error {
	var req domain.AddMenuItemRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.orderChecker.ValidateMenuItem(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	userID, _ := middleware.UserID(c)
	menu, err := h.orders.AddMenuItem(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, errForbidden)
		case errors.Is(err, service.ErrMenuItemExists):
			return c.JSON(http.StatusConflict, errMenuItemExists)
		}
		h.logger.Error("failed to add menu item",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errAddMenuFailed)
	}

	return c.JSON(http.StatusOK, menu)
}

func (h *Handler) Orders(c echo.Context) error {
	page := 1
	if err := echo.QueryParamsBinder(c).Int("page", &page).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidPage)
	}

	userID, _ := middleware.UserID(c)
	history, err := h.orders.Orders(c.Request().Context(), userID, page)
	if err != nil {
		h.logger.Error("failed to get orders",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errOrdersFailed)
	}

	return c.JSON(http.StatusOK, history)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req domain.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.orderChecker.ValidateOrder(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	userID, _ := middleware.UserID(c)
	order, err := h.orders.CreateOrder(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMenuItem) {
			return c.JSON(http.StatusBadRequest, errUnknownMenuItem)
		}
		h.logger.Error("failed to create order",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errOrderFailed)
	}

	return c.JSON(http.StatusOK, domain.CreateOrderResponse{Order: *order})
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyName):
		return c.JSON(http.StatusBadRequest, errNameRequired)
	case errors.Is(err, validation.ErrEmptyEmail):
		return c.JSON(http.StatusBadRequest, errEmailRequired)
	case errors.Is(err, validation.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, errInvalidEmail)
	case errors.Is(err, validation.ErrEmptyPassword):
		return c.JSON(http.StatusBadRequest, errPasswordRequired)
	case errors.Is(err, validation.ErrPasswordTooShort):
		return c.JSON(http.StatusBadRequest, errPasswordTooShort)
	case errors.Is(err, validation.ErrNameTooLong),
		errors.Is(err, validation.ErrEmailTooLong),
		errors.Is(err, validation.ErrPasswordTooLong):
		return c.JSON(http.StatusBadRequest, errFieldTooLong)
	case errors.Is(err, validation.ErrEmptyOrder):
		return c.JSON(http.StatusBadRequest, errItemsRequired)
	case errors.Is(err, validation.ErrTooManyItems):
		return c.JSON(http.StatusBadRequest, errTooManyItems)
	case errors.Is(err, validation.ErrInvalidFranchise):
		return c.JSON(http.StatusBadRequest, errFranchiseRequired)
	case errors.Is(err, validation.ErrEmptyTitle):
		return c.JSON(http.StatusBadRequest, errTitleRequired)
	case errors.Is(err, validation.ErrMenuTextTooLong):
		return c.JSON(http.StatusBadRequest, errFieldTooLong)
	case errors.Is(err, validation.ErrInvalidPrice):
		return c.JSON(http.StatusBadRequest, errInvalidPrice)
	default:
		var orderErr *validation.OrderValidationError
		if errors.As(err, &orderErr) {
			return c.JSON(http.StatusBadRequest, h.formatItemErrors(orderErr))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}

func (h *Handler) formatItemErrors(err *validation.OrderValidationError) map[string]any {
	errs := make([]map[string]any, len(err.Errors))
	for i, e := range err.Errors {
		errs[i] = map[string]any{
			"index": e.Index,
			"error": e.Err.Error(),
		}
	}
	return map[string]any{"errors": errs}
}
