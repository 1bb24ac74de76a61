package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pizzametrics/internal/config"
	"pizzametrics/internal/domain"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateMenuItem = errors.New("menu item already exists")
)

type PoolStats struct {
	Acquired int32
	Idle     int32
	Total    int32
	Max      int32
}

type PizzaRepository struct {
	pool *pgxpool.Pool
}

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

func NewPizzaRepository(ctx context.Context, cfg *config.DatabaseConfig) (*PizzaRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PizzaRepository{pool: pool}, nil
}

func (r *PizzaRepository) Close() {
	r.pool.Close()
}

func (r *PizzaRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// FindUserByEmail returns pgx.ErrNoRows when no user matches.
func (r *PizzaRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		"SELECT id, name, email, role, password_hash, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PizzaRepository) CreateUser(ctx context.Context, name, email string, passwordHash []byte) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// EnsureAdmin creates the account with the admin role, or promotes an
// existing account with that email. The stored password of an existing
// account is left untouched.
func (r *PizzaRepository) EnsureAdmin(ctx context.Context, name, email string, passwordHash []byte) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		name, email, passwordHash, domain.RoleAdmin,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert admin: %w", err)
	}
	return id, nil
}

// UserRole returns pgx.ErrNoRows when the user does not exist.
func (r *PizzaRepository) UserRole(ctx context.Context, userID int64) (string, error) {
	var role string
	err := r.pool.QueryRow(ctx, "SELECT role FROM users WHERE id = $1", userID).Scan(&role)
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *PizzaRepository) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, title, description, image, price FROM menu ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	menu, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MenuItem, error) {
		var m domain.MenuItem
		err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Image, &m.Price)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan menu: %w", err)
	}
	return menu, nil
}

// AddMenuItem inserts item and fills in its ID.
func (r *PizzaRepository) AddMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.pool.QueryRow(ctx,
		"INSERT INTO menu (title, description, image, price) VALUES ($1, $2, $3, $4) RETURNING id",
		item.Title, item.Description, item.Image, item.Price,
	).Scan(&item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateMenuItem
		}
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// ListOrders returns up to limit orders of userID, newest first, each with
// its items.
func (r *PizzaRepository) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, franchise_id, store_id, created_at FROM orders
		WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		var o domain.Order
		err := row.Scan(&o.ID, &o.UserID, &o.FranchiseID, &o.StoreID, &o.CreatedAt)
		o.Items = []domain.OrderItem{}
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	itemRows, err := r.pool.Query(ctx,
		"SELECT order_id, menu_id, description, price FROM order_items WHERE order_id = ANY($1)",
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var it domain.OrderItem
		if err := itemRows.Scan(&orderID, &it.MenuID, &it.Description, &it.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	return orders, nil
}

// PoolStats reports connection pool occupancy.
func (r *PizzaRepository) PoolStats() PoolStats {
	st := r.pool.Stat()
	return PoolStats{
		Acquired: st.AcquiredConns(),
		Idle:     st.IdleConns(),
		Total:    st.TotalConns(),
		Max:      st.MaxConns(),
	}
}

// CreateOrder inserts the order header and bulk-copies its items in one
// transaction. It fills in order.ID and order.CreatedAt.
func (r *PizzaRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx,
		"INSERT INTO orders (user_id, franchise_id, store_id) VALUES ($1, $2, $3) RETURNING id, created_at",
		order.UserID, order.FranchiseID, order.StoreID,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	rows := make([][]any, len(order.Items))
	for i, it := range order.Items {
		rows[i] = []any{order.ID, it.MenuID, it.Description, it.Price}
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "menu_id", "description", "price"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to copy order items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}
