package dto

type OrderItemRequest struct {
	Name    string  `json:"name"`
	Qty     int64   `json:"qty"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Product string  `json:"product"`
}

type ShippingAddressRequest struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type OrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	TotalPrice      float64                `json:"totalPrice"`
}

// PaymentResultRequest is the gateway echo forwarded by the frontend after a
// successful capture. Stored as-is, never verified gateway-side.
type PaymentResultRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"payer_email"`
}
