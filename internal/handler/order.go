package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"coffeeshop/internal/model"
	"coffeeshop/internal/service"
)

type createOrderRequest struct {
	CustomerName string            `json:"customerName"`
	Items        []model.OrderItem `json:"items"`
	Total        float64           `json:"total"`
}

type updateOrderRequest struct {
	Status model.Status `json:"status"`
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, decodeCreateError(err))
			return
		}

		order, err := orderSvc.Create(r.Context(), service.NewOrder{
			CustomerName: req.CustomerName,
			Items:        req.Items,
			Total:        req.Total,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusCreated, "Order created successfully", order)
	}
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeBody decodes exactly one JSON value; anything but whitespace after
// it is an error.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// decodeCreateError reports customerName or items of the wrong top-level
// type the same way as a missing field. Badly typed line items and every
// other decode failure are a malformed body.
func decodeCreateError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case typeErr.Field == "customerName":
			return service.NewValidationError(service.MsgMissingFields)
		case typeErr.Field == "items" && typeErr.Type != nil && typeErr.Type.Kind() == reflect.Slice:
			return service.NewValidationError(service.MsgMissingFields)
		}
	}
	return service.NewValidationError(service.MsgInvalidBody)
}

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := orderSvc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, http.StatusOK, "", orders)
	}
}

func GetOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, r, service.ErrNotFound)
			return
		}

		order, err := orderSvc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, http.StatusOK, "", order)
	}
}

func UpdateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, r, service.ErrNotFound)
			return
		}

		// An undecodable body leaves Status empty, which the service
		// rejects only after confirming the order exists.
		var req updateOrderRequest
		if err := decodeBody(r, &req); err != nil {
			req = updateOrderRequest{}
		}

		order, err := orderSvc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, http.StatusOK, "Order updated", order)
	}
}

func DeleteOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, r, service.ErrNotFound)
			return
		}

		if err := orderSvc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeData(w, http.StatusOK, "Order deleted successfully", nil)
	}
}

// orderID parses the {id} path segment. Non-numeric ids can never match an
// order.
func orderID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
