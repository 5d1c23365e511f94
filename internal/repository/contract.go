package repository

import (
	"context"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, keyword string, limit int64, skip int64) (data []domain.Product, err error)
	CountProducts(ctx context.Context, keyword string) (count int64, err error)
	GetTopProducts(ctx context.Context, minRating float64, limit int64) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	// UpdateProductReviews persists the review list and its derived fields,
	// guarded by the review count observed at read time. Returns ErrConflict
	// when a concurrent review landed first.
	UpdateProductReviews(ctx context.Context, data domain.Product, observedNumReviews int64) (err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrderByID(ctx context.Context, id string) (order domain.Order, err error)
	GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (data []domain.Order, err error)
	GetOrders(ctx context.Context) (data []domain.Order, err error)
	UpdateOrderPayment(ctx context.Context, id primitive.ObjectID, result domain.PaymentResult, paidAt time.Time) (err error)
	UpdateOrderDelivery(ctx context.Context, id primitive.ObjectID, deliveredAt time.Time) (err error)
	HasDeliveredOrderWithProduct(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (found bool, err error)
}

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
}
