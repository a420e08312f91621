package service

import "coffeeshop/internal/model"

var defaultMenu = []model.MenuItem{
	{ID: 1, Name: "Espresso", Price: 120, Description: "Strong and bold"},
	{ID: 2, Name: "Cappuccino", Price: 150, Description: "Creamy and smooth"},
	{ID: 3, Name: "Latte", Price: 160, Description: "Mild and milky"},
	{ID: 4, Name: "Americano", Price: 130, Description: "Classic black coffee"},
}

// MenuService serves a catalog fixed at construction time.
type MenuService struct {
	items []model.MenuItem
}

func NewMenuService(items []model.MenuItem) *MenuService {
	return &MenuService{items: append([]model.MenuItem(nil), items...)}
}

// DefaultMenu returns the catalog the shop opens with.
func DefaultMenu() []model.MenuItem {
	return append([]model.MenuItem(nil), defaultMenu...)
}

func (s *MenuService) List() []model.MenuItem {
	return append(make([]model.MenuItem, 0, len(s.items)), s.items...)
}
