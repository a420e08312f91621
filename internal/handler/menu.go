package handler

import (
	"net/http"

	"coffeeshop/internal/service"
)

func ListMenuHandler(menuSvc *service.MenuService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, "", menuSvc.List())
	}
}
