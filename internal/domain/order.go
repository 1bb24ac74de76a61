package domain

import "time"

type MenuItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

type OrderItem struct {
	MenuID      int64   `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	FranchiseID int64       `json:"franchiseId"`
	StoreID     int64       `json:"storeId"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"date"`
}

// Total is the order revenue in the menu's currency unit.
func (o *Order) Total() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price
	}
	return total
}

type CreateOrderRequest struct {
	FranchiseID int64       `json:"franchiseId"`
	StoreID     int64       `json:"storeId"`
	Items       []OrderItem `json:"items"`
}

type CreateOrderResponse struct {
	Order Order `json:"order"`
}

type AddMenuItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// OrderHistory is one page of a diner's orders, newest first.
type OrderHistory struct {
	DinerID int64   `json:"dinerId"`
	Orders  []Order `json:"orders"`
	Page    int     `json:"page"`
}
