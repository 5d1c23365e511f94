package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	Name    string             `bson:"name" json:"name"`
	Qty     int64              `bson:"qty" json:"qty"`
	Image   string             `bson:"image" json:"image"`
	Price   float64            `bson:"price" json:"price"`
	Product primitive.ObjectID `bson:"product" json:"product"`
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// PaymentResult is the opaque payment-gateway echo. It is stored verbatim from
// the pay call and never verified against the gateway.
type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentResult   *PaymentResult     `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	ItemsPrice      float64            `bson:"itemsPrice" json:"itemsPrice"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
