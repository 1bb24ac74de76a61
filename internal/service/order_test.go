package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	testclock "k8s.io/utils/clock/testing"

	"pizzametrics/internal/domain"
	"pizzametrics/internal/repository"
	"pizzametrics/internal/service"
	"pizzametrics/internal/service/mocks"
)

var testMenu = []domain.MenuItem{
	{ID: 1, Title: "Veggie", Price: 0.0038},
	{ID: 2, Title: "Pepperoni", Price: 0.0042},
}

func newOrderService(t *testing.T) (*service.OrderService, *mocks.MockOrderRepository, *mocks.MockOrderRecorder, *testclock.FakeClock) {
	repo := mocks.NewMockOrderRepository(t)
	rec := mocks.NewMockOrderRecorder(t)
	clk := testclock.NewFakeClock(time.UnixMilli(1_000_000))
	return service.NewOrderService(repo, rec, clk, 2), repo, rec, clk
}

// Menu tests

func TestMenu_Success(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)

	repo.EXPECT().GetMenu(mock.Anything).Return(testMenu, nil)

	menu, err := svc.Menu(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testMenu, menu)
}

func TestMenu_Error(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)
	expectedErr := errors.New("db connection error")

	repo.EXPECT().GetMenu(mock.Anything).Return(nil, expectedErr)

	_, err := svc.Menu(context.Background())
	assert.ErrorIs(t, err, expectedErr)
}

// CreateOrder tests

func TestCreateOrder_Success(t *testing.T) {
	svc, repo, rec, clk := newOrderService(t)

	repo.EXPECT().GetMenu(mock.Anything).Return(testMenu, nil)
	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o *domain.Order) error {
			clk.Step(250 * time.Millisecond)
			o.ID = 99
			return nil
		})
	rec.EXPECT().RecordPizzaSale(mock.MatchedBy(func(v float64) bool {
		return v > 0.00799 && v < 0.00801
	}), 2).Return()
	rec.EXPECT().RecordPizzaCreationLatency(250.0).Return()

	order, err := svc.CreateOrder(context.Background(), 5, &domain.CreateOrderRequest{
		FranchiseID: 1,
		StoreID:     1,
		Items: []domain.OrderItem{
			{MenuID: 1, Description: "client lies", Price: 100},
			{MenuID: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(99), order.ID)
	assert.Equal(t, int64(5), order.UserID)
	assert.Equal(t, []domain.OrderItem{
		{MenuID: 1, Description: "Veggie", Price: 0.0038},
		{MenuID: 2, Description: "Pepperoni", Price: 0.0042},
	}, order.Items)
}

func TestCreateOrder_UnknownMenuItem(t *testing.T) {
	svc, repo, rec, _ := newOrderService(t)

	repo.EXPECT().GetMenu(mock.Anything).Return(testMenu, nil)
	rec.EXPECT().RecordPizzaCreationFailure().Return()

	_, err := svc.CreateOrder(context.Background(), 5, &domain.CreateOrderRequest{
		FranchiseID: 1, StoreID: 1, Items: []domain.OrderItem{{MenuID: 42}},
	})
	assert.ErrorIs(t, err, service.ErrUnknownMenuItem)
}

func TestCreateOrder_RepositoryError(t *testing.T) {
	svc, repo, rec, _ := newOrderService(t)
	expectedErr := errors.New("copy failed")

	repo.EXPECT().GetMenu(mock.Anything).Return(testMenu, nil)
	repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(expectedErr)
	rec.EXPECT().RecordPizzaCreationFailure().Return()

	_, err := svc.CreateOrder(context.Background(), 5, &domain.CreateOrderRequest{
		FranchiseID: 1, StoreID: 1, Items: []domain.OrderItem{{MenuID: 1}},
	})
	assert.ErrorIs(t, err, expectedErr)
}

func TestCreateOrder_MenuError(t *testing.T) {
	svc, repo, rec, _ := newOrderService(t)
	expectedErr := errors.New("db connection error")

	repo.EXPECT().GetMenu(mock.Anything).Return(nil, expectedErr)
	rec.EXPECT().RecordPizzaCreationFailure().Return()

	_, err := svc.CreateOrder(context.Background(), 5, &domain.CreateOrderRequest{
		FranchiseID: 1, StoreID: 1, Items: []domain.OrderItem{{MenuID: 1}},
	})
	assert.ErrorIs(t, err, expectedErr)
}

// Orders tests

func TestOrders_FirstPage(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)
	history := []domain.Order{{ID: 9, UserID: 5}, {ID: 8, UserID: 5}}

	repo.EXPECT().ListOrders(mock.Anything, int64(5), 2, 0).Return(history, nil)

	got, err := svc.Orders(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.OrderHistory{DinerID: 5, Orders: history, Page: 1}, got)
}

func TestOrders_PageOffsets(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		wantOffset int
		wantPage   int
	}{
		{"third page", 3, 4, 3},
		{"zero clamps to first", 0, 0, 1},
		{"negative clamps to first", -2, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newOrderService(t)
			repo.EXPECT().ListOrders(mock.Anything, int64(5), 2, tt.wantOffset).Return(nil, nil)

			got, err := svc.Orders(context.Background(), 5, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.NotNil(t, got.Orders)
			assert.Empty(t, got.Orders)
		})
	}
}

func TestOrders_RepositoryError(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)
	expectedErr := errors.New("query failed")

	repo.EXPECT().ListOrders(mock.Anything, int64(5), 2, 0).Return(nil, expectedErr)

	_, err := svc.Orders(context.Background(), 5, 1)
	assert.ErrorIs(t, err, expectedErr)
}

// AddMenuItem tests

var newPizza = &domain.AddMenuItemRequest{Title: "Student", Description: "No topping", Image: "pizza9.png", Price: 0.0001}

func TestAddMenuItem_Admin(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)
	updated := append(append([]domain.MenuItem{}, testMenu...), domain.MenuItem{ID: 3, Title: "Student", Price: 0.0001})

	repo.EXPECT().UserRole(mock.Anything, int64(1)).Return(domain.RoleAdmin, nil)
	repo.EXPECT().AddMenuItem(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, item *domain.MenuItem) error {
			assert.Equal(t, "Student", item.Title)
			assert.Equal(t, "pizza9.png", item.Image)
			assert.InDelta(t, 0.0001, item.Price, 1e-12)
			item.ID = 3
			return nil
		})
	repo.EXPECT().GetMenu(mock.Anything).Return(updated, nil)

	menu, err := svc.AddMenuItem(context.Background(), 1, newPizza)
	require.NoError(t, err)
	assert.Equal(t, updated, menu)
}

func TestAddMenuItem_Forbidden(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		roleErr error
	}{
		{"diner", domain.RoleDiner, nil},
		{"unknown user", "", pgx.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newOrderService(t)
			repo.EXPECT().UserRole(mock.Anything, int64(5)).Return(tt.role, tt.roleErr)

			_, err := svc.AddMenuItem(context.Background(), 5, newPizza)
			assert.ErrorIs(t, err, service.ErrForbidden)
		})
	}
}

func TestAddMenuItem_Duplicate(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)

	repo.EXPECT().UserRole(mock.Anything, int64(1)).Return(domain.RoleAdmin, nil)
	repo.EXPECT().AddMenuItem(mock.Anything, mock.Anything).Return(repository.ErrDuplicateMenuItem)

	_, err := svc.AddMenuItem(context.Background(), 1, newPizza)
	assert.ErrorIs(t, err, service.ErrMenuItemExists)
}

func TestAddMenuItem_RoleLookupError(t *testing.T) {
	svc, repo, _, _ := newOrderService(t)
	expectedErr := errors.New("db down")

	repo.EXPECT().UserRole(mock.Anything, int64(1)).Return("", expectedErr)

	_, err := svc.AddMenuItem(context.Background(), 1, newPizza)
	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, service.ErrForbidden)
}
