package dto

import "github.com/keerthanakottapalli/ShopSphere/internal/domain"

type OrderUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// OrderResponse is an order with its owning user's name/email attached. The
// outer User field shadows the raw user id on the embedded order.
type OrderResponse struct {
	domain.Order
	User OrderUser `json:"user"`
}

type PayPalConfigResponse struct {
	ClientID string `json:"clientId"`
}
