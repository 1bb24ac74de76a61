package validation

import (
	"math"
	"unicode/utf8"

	"pizzametrics/internal/domain"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
	maxImageLength       = 2048
)

type OrderValidator struct {
	maxItems int
}

func NewOrderValidator(maxItems int) *OrderValidator {
	return &OrderValidator{maxItems: max(1, maxItems)}
}

func (v *OrderValidator) ValidateOrder(req *domain.CreateOrderRequest) error {
	if req.FranchiseID <= 0 || req.StoreID <= 0 {
		return ErrInvalidFranchise
	}

	if len(req.Items) == 0 {
		return ErrEmptyOrder
	}

	if len(req.Items) > v.maxItems {
		return ErrTooManyItems
	}

	var itemErrors []IndexedError
	for i, it := range req.Items {
		if it.MenuID <= 0 {
			itemErrors = append(itemErrors, IndexedError{Index: i, Err: ErrInvalidMenuItemID})
		}
	}

	if len(itemErrors) > 0 {
		return &OrderValidationError{Errors: itemErrors}
	}

	return nil
}

func (v *OrderValidator) ValidateMenuItem(req *domain.AddMenuItemRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}

	if utf8.RuneCountInString(req.Title) > maxTitleLength ||
		utf8.RuneCountInString(req.Description) > maxDescriptionLength ||
		len(req.Image) > maxImageLength {
		return ErrMenuTextTooLong
	}

	if req.Price <= 0 || math.IsInf(req.Price, 0) || math.IsNaN(req.Price) {
		return ErrInvalidPrice
	}

	return nil
}
