package service

import (
	"context"
	"io"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, keyword string, pageNumber int64) (resp dto.ProductListResponse, err error)
	GetTopProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	CreateDraftProduct(ctx context.Context, actingUser domain.User) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	AddProductReview(ctx context.Context, productID string, req dto.ReviewRequest, actingUser domain.User) (err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, req dto.OrderRequest, actingUser domain.User) (order domain.Order, err error)
	GetOrderByID(ctx context.Context, id string, actingUser domain.User) (resp dto.OrderResponse, err error)
	GetMyOrders(ctx context.Context, actingUser domain.User) (data []domain.Order, err error)
	GetOrders(ctx context.Context) (data []dto.OrderResponse, err error)
	PayOrder(ctx context.Context, id string, req dto.PaymentResultRequest) (order domain.Order, err error)
	DeliverOrder(ctx context.Context, id string) (order domain.Order, err error)
}

type UserService interface {
	Register(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error)
	GetProfile(ctx context.Context, actingUser domain.User) (resp dto.UserResponse, err error)
	UpdateProfile(ctx context.Context, actingUser domain.User, req dto.UserRequest) (resp dto.UserResponse, err error)
}

type UploadService interface {
	SaveImage(filename string, contentType string, src io.Reader) (imagePath string, err error)
}
