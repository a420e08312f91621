package handler

import (
	"net/http"
	"time"

	"coffeeshop/internal/model"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(model.TimestampLayout),
		})
	}
}
