package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/service"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockProductRepository) GetProducts(ctx context.Context, keyword string, limit int64, skip int64) ([]domain.Product, error) {
	args := m.Called(ctx, keyword, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) CountProducts(ctx context.Context, keyword string) (int64, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) GetTopProducts(ctx context.Context, minRating float64, limit int64) ([]domain.Product, error) {
	args := m.Called(ctx, minRating, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProductReviews(ctx context.Context, data domain.Product, observedNumReviews int64) error {
	args := m.Called(ctx, data, observedNumReviews)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderPayment(ctx context.Context, id primitive.ObjectID, result domain.PaymentResult, paidAt time.Time) error {
	args := m.Called(ctx, id, result, paidAt)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderDelivery(ctx context.Context, id primitive.ObjectID, deliveredAt time.Time) error {
	args := m.Called(ctx, id, deliveredAt)
	return args.Error(0)
}

func (m *MockOrderRepository) HasDeliveredOrderWithProduct(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func TestProductService_GetProducts_Pagination(t *testing.T) {
	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	svc := service.CreateProductService(productRepo, orderRepo, nil)

	secondPage := make([]domain.Product, 5)
	productRepo.On("CountProducts", mock.Anything, "").Return(int64(15), nil).Once()
	productRepo.On("GetProducts", mock.Anything, "", int64(10), int64(10)).Return(secondPage, nil).Once()

	resp, err := svc.GetProducts(context.Background(), "", 2)

	assert.NoError(t, err)
	assert.Len(t, resp.Products, 5)
	assert.Equal(t, int64(2), resp.Page)
	assert.Equal(t, int64(2), resp.Pages)
	productRepo.AssertExpectations(t)
}

func TestProductService_GetProducts_DefaultsToFirstPage(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

	productRepo.On("CountProducts", mock.Anything, "phone").Return(int64(0), nil).Once()
	productRepo.On("GetProducts", mock.Anything, "phone", int64(10), int64(0)).Return(nil, nil).Once()

	resp, err := svc.GetProducts(context.Background(), "phone", 0)

	assert.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
	assert.Equal(t, int64(1), resp.Page)
	assert.Equal(t, int64(0), resp.Pages)
	productRepo.AssertExpectations(t)
}

func TestProductService_GetTopProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

	top := []domain.Product{
		{Name: "A", Rating: 4.8},
		{Name: "B", Rating: 4.5},
		{Name: "C", Rating: 4.0},
	}
	productRepo.On("GetTopProducts", mock.Anything, float64(4), int64(3)).Return(top, nil).Once()

	products, err := svc.GetTopProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Rating, float64(4))
	}
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateDraftProduct(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

	adminID := primitive.NewObjectID()
	createdID := primitive.NewObjectID()
	productRepo.On("AddProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Sample name" && p.Brand == "Generic Brand" && p.User == adminID && p.NumReviews == 0
	})).Return(createdID, nil).Once()

	product, err := svc.CreateDraftProduct(context.Background(), domain.User{ID: adminID, IsAdmin: true})

	assert.NoError(t, err)
	assert.Equal(t, createdID, product.ID)
	assert.Equal(t, "Sample description", product.Description)
	assert.Equal(t, "/images/sample.jpg", product.Image)
	assert.Zero(t, product.Price)
	productRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

	productID := primitive.NewObjectID()
	stored := domain.Product{
		ID:          productID,
		Name:        "Old name",
		Description: "Old description",
		Price:       10,
		Brand:       "Old brand",
	}
	productRepo.On("GetProductByID", mock.Anything, productID.Hex()).Return(stored, nil).Once()

	newPrice := 25.5
	productRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		// Absent fields keep their stored values.
		return p.Price == newPrice && p.Name == "Old name" && p.Brand == "Old brand"
	})).Return(nil).Once()

	updated, err := svc.UpdateProduct(context.Background(), productID.Hex(), dto.ProductRequest{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, "Old name", updated.Name)
	productRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

	productRepo.On("GetProductByID", mock.Anything, "missing").Return(domain.Product{}, errs.ErrProductNotFound).Once()

	_, err := svc.UpdateProduct(context.Background(), "missing", dto.ProductRequest{})

	assert.ErrorIs(t, err, errs.ErrProductNotFound)
	productRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
}

func TestProductService_AddProductReview(t *testing.T) {
	reviewerID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	reviewer := domain.User{ID: reviewerID, Name: "Jane"}

	t.Run("appends review and recomputes rating", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		svc := service.CreateProductService(productRepo, orderRepo, nil)

		stored := domain.Product{
			ID:         productID,
			Rating:     3,
			NumReviews: 2,
			Reviews: []domain.Review{
				{User: otherID, Rating: 4},
				{User: primitive.NewObjectID(), Rating: 2},
			},
		}
		productRepo.On("GetProductByID", mock.Anything, productID.Hex()).Return(stored, nil).Once()
		orderRepo.On("HasDeliveredOrderWithProduct", mock.Anything, reviewerID, productID).Return(true, nil).Once()
		productRepo.On("UpdateProductReviews", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
			return p.NumReviews == 3 && p.Rating == 3 && len(p.Reviews) == 3 && p.Reviews[2].Name == "Jane"
		}), int64(2)).Return(nil).Once()

		err := svc.AddProductReview(context.Background(), productID.Hex(), dto.ReviewRequest{Rating: 3, Comment: "ok"}, reviewer)

		assert.NoError(t, err)
		productRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("rejects review without delivered order", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		svc := service.CreateProductService(productRepo, orderRepo, nil)

		productRepo.On("GetProductByID", mock.Anything, productID.Hex()).Return(domain.Product{ID: productID}, nil).Once()
		orderRepo.On("HasDeliveredOrderWithProduct", mock.Anything, reviewerID, productID).Return(false, nil).Once()

		err := svc.AddProductReview(context.Background(), productID.Hex(), dto.ReviewRequest{Rating: 5}, reviewer)

		assert.ErrorIs(t, err, errs.ErrReviewNotAllowed)
		productRepo.AssertNotCalled(t, "UpdateProductReviews", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate review", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		svc := service.CreateProductService(productRepo, orderRepo, nil)

		stored := domain.Product{
			ID:         productID,
			NumReviews: 1,
			Reviews:    []domain.Review{{User: reviewerID, Rating: 5}},
		}
		productRepo.On("GetProductByID", mock.Anything, productID.Hex()).Return(stored, nil).Once()
		orderRepo.On("HasDeliveredOrderWithProduct", mock.Anything, reviewerID, productID).Return(true, nil).Once()

		err := svc.AddProductReview(context.Background(), productID.Hex(), dto.ReviewRequest{Rating: 4}, reviewer)

		assert.ErrorIs(t, err, errs.ErrAlreadyReviewed)
		productRepo.AssertNotCalled(t, "UpdateProductReviews", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

		err := svc.AddProductReview(context.Background(), productID.Hex(), dto.ReviewRequest{Rating: 6}, reviewer)

		assert.ErrorIs(t, err, errs.ErrClient)
		productRepo.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})

	t.Run("retries on concurrent review conflict", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		svc := service.CreateProductService(productRepo, orderRepo, nil)

		productRepo.On("GetProductByID", mock.Anything, productID.Hex()).Return(domain.Product{ID: productID}, nil).Twice()
		orderRepo.On("HasDeliveredOrderWithProduct", mock.Anything, reviewerID, productID).Return(true, nil).Twice()
		productRepo.On("UpdateProductReviews", mock.Anything, mock.Anything, int64(0)).Return(errs.ErrConflict).Once()
		productRepo.On("UpdateProductReviews", mock.Anything, mock.Anything, int64(0)).Return(nil).Once()

		err := svc.AddProductReview(context.Background(), productID.Hex(), dto.ReviewRequest{Rating: 5}, reviewer)

		assert.NoError(t, err)
		productRepo.AssertExpectations(t)
	})
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := service.CreateProductService(productRepo, new(MockOrderRepository), nil)

	productRepo.On("DeleteProduct", mock.Anything, "missing").Return(errs.ErrProductNotFound).Once()

	err := svc.DeleteProduct(context.Background(), "missing")

	assert.ErrorIs(t, err, errs.ErrProductNotFound)
	productRepo.AssertExpectations(t)
}

func TestProduct_RecalculateRating(t *testing.T) {
	product := domain.Product{
		Reviews: []domain.Review{
			{Rating: 5},
			{Rating: 4},
			{Rating: 2},
		},
	}

	product.RecalculateRating()

	assert.Equal(t, int64(3), product.NumReviews)
	assert.InDelta(t, 11.0/3.0, product.Rating, 1e-9)

	product.Reviews = nil
	product.RecalculateRating()
	assert.Zero(t, product.Rating)
	assert.Zero(t, product.NumReviews)
}
