package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coffeeshop/internal/model"
)

// Client-facing validation messages.
const (
	MsgMissingFields = "Missing required fields: customerName, items"
	MsgEmptyItems    = "Order must contain at least one item"
	MsgInvalidBody   = "Invalid request body"
	MsgInvalidStatus = "Invalid status"
)

// OrderStore keeps orders in insertion order and assigns their ids.
// Implementations return ErrNotFound for unknown ids and must be safe for
// concurrent use.
type OrderStore interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int) (model.Order, error)
	UpdateStatus(ctx context.Context, id int, status model.Status) (model.Order, error)
	Delete(ctx context.Context, id int) error
}

// NewOrder is a decoded create request. A nil Items means the field was
// absent; an empty non-nil slice means the client sent [].
type NewOrder struct {
	CustomerName string
	Items        []model.OrderItem
	Total        float64
}

type OrderService struct {
	store OrderStore
	now   func() time.Time
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

func (s *OrderService) Create(ctx context.Context, in NewOrder) (model.Order, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" || in.Items == nil {
		return model.Order{}, NewValidationError(MsgMissingFields)
	}
	if len(in.Items) == 0 {
		return model.Order{}, NewValidationError(MsgEmptyItems)
	}

	order, err := s.store.Create(ctx, model.Order{
		CustomerName: name,
		Items:        append([]model.OrderItem(nil), in.Items...),
		Total:        in.Total,
		Timestamp:    s.now().UTC(),
		Status:       model.StatusPending,
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}

	slog.Info("order created", "id", order.ID, "customer", order.CustomerName, "items", len(order.Items), "total", order.Total)
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (model.Order, error) {
	order, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}

// UpdateStatus reports ErrNotFound before looking at status, so an unknown
// id wins over a bad payload.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status model.Status) (model.Order, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return model.Order{}, fmt.Errorf("update order %d: %w", id, err)
	}
	if !status.Valid() {
		return model.Order{}, NewValidationError(MsgInvalidStatus)
	}

	order, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return model.Order{}, fmt.Errorf("update order %d: %w", id, err)
	}

	slog.Info("order updated", "id", order.ID, "status", order.Status)
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	slog.Info("order deleted", "id", id)
	return nil
}
