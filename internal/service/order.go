package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"k8s.io/utils/clock"

	"pizzametrics/internal/domain"
	"pizzametrics/internal/repository"
)

var (
	ErrUnknownMenuItem = errors.New("unknown menu item")
	ErrForbidden       = errors.New("admin role required")
	ErrMenuItemExists  = errors.New("menu item already exists")
)

type OrderService struct {
	repo     OrderRepository
	recorder OrderRecorder
	clock    clock.PassiveClock
	pageSize int
}

func NewOrderService(repo OrderRepository, recorder OrderRecorder, clk clock.PassiveClock, pageSize int) *OrderService {
	return &OrderService{
		repo:     repo,
		recorder: recorder,
		clock:    clk,
		pageSize: max(1, pageSize),
	}
}

func (s *OrderService) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	menu, err := s.repo.GetMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

// AddMenuItem adds a pizza to the menu on behalf of an admin and returns the
// updated menu.
func (s *OrderService) AddMenuItem(ctx context.Context, userID int64, req *domain.AddMenuItemRequest) ([]domain.MenuItem, error) {
	role, err := s.repo.UserRole(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to get user role: %w", err)
	}
	if role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	item := &domain.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
	}
	if err := s.repo.AddMenuItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateMenuItem) {
			return nil, ErrMenuItemExists
		}
		return nil, fmt.Errorf("failed to add menu item: %w", err)
	}

	return s.Menu(ctx)
}

// Orders returns one page of the user's order history. Pages start at 1;
// anything lower is treated as the first page.
func (s *OrderService) Orders(ctx context.Context, userID int64, page int) (*domain.OrderHistory, error) {
	page = max(1, page)

	orders, err := s.repo.ListOrders(ctx, userID, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	return &domain.OrderHistory{DinerID: userID, Orders: orders, Page: page}, nil
}

// CreateOrder prices every item from the menu, so client-sent prices and
// descriptions are ignored. Any failure after validation counts as a failed
// pizza creation.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, req *domain.CreateOrderRequest) (*domain.Order, error) {
	start := s.clock.Now()

	order, err := s.placeOrder(ctx, userID, req)
	if err != nil {
		s.recorder.RecordPizzaCreationFailure()
		return nil, err
	}

	s.recorder.RecordPizzaSale(order.Total(), len(order.Items))
	s.recorder.RecordPizzaCreationLatency(float64(s.clock.Since(start).Microseconds()) / 1000)

	return order, nil
}

func (s *OrderService) placeOrder(ctx context.Context, userID int64, req *domain.CreateOrderRequest) (*domain.Order, error) {
	menu, err := s.repo.GetMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	byID := make(map[int64]domain.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	order := &domain.Order{
		UserID:      userID,
		FranchiseID: req.FranchiseID,
		StoreID:     req.StoreID,
		Items:       make([]domain.OrderItem, len(req.Items)),
	}
	for i, it := range req.Items {
		m, ok := byID[it.MenuID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownMenuItem, it.MenuID)
		}
		order.Items[i] = domain.OrderItem{MenuID: m.ID, Description: m.Title, Price: m.Price}
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}
