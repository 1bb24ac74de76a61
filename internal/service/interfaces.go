package service

//go:generate go tool mockery

import (
	"context"

	"pizzametrics/internal/domain"
)

type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, name, email string, passwordHash []byte) (int64, error)
	EnsureAdmin(ctx context.Context, name, email string, passwordHash []byte) (int64, error)
}

type OrderRepository interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error)
	AddMenuItem(ctx context.Context, item *domain.MenuItem) error
	UserRole(ctx context.Context, userID int64) (string, error)
}

type TokenMinter interface {
	Mint(userID int64) (string, error)
}

type SessionStore interface {
	Put(token string, userID int64) bool
	Revoke(token string)
}

type AuthRecorder interface {
	RecordAuthSuccess(userID string)
	RecordAuthFailure()
	RemoveActiveUser(userID string)
}

type OrderRecorder interface {
	RecordPizzaSale(revenue float64, count int)
	RecordPizzaCreationFailure()
	RecordPizzaCreationLatency(ms float64)
}
