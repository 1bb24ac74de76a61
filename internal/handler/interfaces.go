package handler

//go:generate go tool mockery

import (
	"context"

	"pizzametrics/internal/domain"
	"pizzametrics/internal/metrics"
)

type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	Logout(token string, userID int64)
}

type OrderService interface {
	Menu(ctx context.Context) ([]domain.MenuItem, error)
	CreateOrder(ctx context.Context, userID int64, req *domain.CreateOrderRequest) (*domain.Order, error)
	Orders(ctx context.Context, userID int64, page int) (*domain.OrderHistory, error)
	AddMenuItem(ctx context.Context, userID int64, req *domain.AddMenuItemRequest) ([]domain.MenuItem, error)
}

type CredentialsValidator interface {
	ValidateRegistration(name, email, password string) error
	ValidateLogin(email, password string) error
}

type OrderValidator interface {
	ValidateOrder(req *domain.CreateOrderRequest) error
	ValidateMenuItem(req *domain.AddMenuItemRequest) error
}

type SnapshotSource interface {
	Snapshot() metrics.Snapshot
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}
