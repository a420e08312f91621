package model

import (
	"encoding/json"
	"time"
)

// TimestampLayout renders times the way browsers print Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is a line item as the storefront sends it: a copy of a menu
// entry. Repeated entries stand for quantity.
type OrderItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type Order struct {
	ID           int         `json:"id"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
	Status       Status      `json:"status"`
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	c := o
	c.Items = append([]OrderItem(nil), o.Items...)
	return c
}

func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: o.Timestamp.UTC().Format(TimestampLayout),
		Alias:     (*Alias)(&o),
	})
}
