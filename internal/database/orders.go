package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"coffeeshop/internal/model"
	"coffeeshop/internal/service"
)

const orderColumns = `id, customer_name, items, total, status, created_at`

// OrderStore keeps orders in PostgreSQL. Ids come from the BIGSERIAL
// sequence, so they stay unique after deletes.
type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, o model.Order) (model.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return model.Order{}, fmt.Errorf("encode items: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, items, total, status, created_at)
		VALUES ($1, $2::jsonb, $3, $4, $5)
		RETURNING `+orderColumns,
		o.CustomerName, string(items), o.Total, string(o.Status), o.Timestamp,
	)
	created, err := scanOrder(row)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return created, nil
}

func (s *OrderStore) List(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

func (s *OrderStore) Get(ctx context.Context, id int) (model.Order, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, service.ErrNotFound
		}
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id int, status model.Status) (model.Order, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2 RETURNING `+orderColumns,
		string(status), id,
	)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, service.ErrNotFound
		}
		return model.Order{}, fmt.Errorf("update order: %w", err)
	}
	return o, nil
}

func (s *OrderStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return service.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (model.Order, error) {
	var (
		o      model.Order
		items  []byte
		status string
	)
	if err := row.Scan(&o.ID, &o.CustomerName, &items, &o.Total, &status, &o.Timestamp); err != nil {
		return model.Order{}, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return model.Order{}, fmt.Errorf("decode items: %w", err)
	}
	o.Status = model.Status(status)
	o.Timestamp = o.Timestamp.UTC()
	return o, nil
}
