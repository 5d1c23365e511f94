package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/controller"
	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/middleware"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductService is a mock implementation of service.ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProducts(ctx context.Context, keyword string, pageNumber int64) (dto.ProductListResponse, error) {
	args := m.Called(ctx, keyword, pageNumber)
	return args.Get(0).(dto.ProductListResponse), args.Error(1)
}

func (m *MockProductService) GetTopProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductService) CreateDraftProduct(ctx context.Context, actingUser domain.User) (domain.Product, error) {
	args := m.Called(ctx, actingUser)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (domain.Product, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) AddProductReview(ctx context.Context, productID string, req dto.ReviewRequest, actingUser domain.User) error {
	args := m.Called(ctx, productID, req, actingUser)
	return args.Error(0)
}

// MockUserRepository backs the auth middleware in controller tests.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

var testConfig = &config.Config{JWTSecret: "test-secret"}

func newProductTestServer(t *testing.T, svc *MockProductService, userRepo *MockUserRepository) *echo.Echo {
	t.Helper()
	e := echo.New()
	auth := middleware.CreateAuthMiddleware(testConfig, userRepo)
	controller.CreateProductController(e.Group("/api"), svc, auth)
	return e
}

func bearerToken(t *testing.T, user domain.User) string {
	t.Helper()
	token, err := utils.CreateJWTToken(user, testConfig.JWTSecret)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestProductController_GetProducts(t *testing.T) {
	svc := new(MockProductService)
	e := newProductTestServer(t, svc, new(MockUserRepository))

	svc.On("GetProducts", mock.Anything, "phone", int64(2)).Return(dto.ProductListResponse{
		Products: []domain.Product{},
		Page:     2,
		Pages:    3,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products?keyword=phone&pageNumber=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body dto.ProductListResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Page)
	assert.Equal(t, int64(3), body.Pages)
	assert.NotNil(t, body.Products)
	svc.AssertExpectations(t)
}

func TestProductController_GetProductByID_NotFound(t *testing.T) {
	svc := new(MockProductService)
	e := newProductTestServer(t, svc, new(MockUserRepository))

	svc.On("GetProductByID", mock.Anything, "missing").Return(domain.Product{}, errs.ErrProductNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Product not found", body["message"])
}

func TestProductController_CreateProduct_Authorization(t *testing.T) {
	adminID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	admin := domain.User{ID: adminID, Name: "Root", IsAdmin: true}
	plain := domain.User{ID: userID, Name: "Jane"}

	t.Run("missing token", func(t *testing.T) {
		svc := new(MockProductService)
		e := newProductTestServer(t, svc, new(MockUserRepository))

		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "CreateDraftProduct", mock.Anything, mock.Anything)
	})

	t.Run("non-admin user", func(t *testing.T) {
		svc := new(MockProductService)
		userRepo := new(MockUserRepository)
		e := newProductTestServer(t, svc, userRepo)

		userRepo.On("GetUserByID", mock.Anything, userID.Hex()).Return(plain, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t, plain))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		svc.AssertNotCalled(t, "CreateDraftProduct", mock.Anything, mock.Anything)
	})

	t.Run("admin scaffolds a draft", func(t *testing.T) {
		svc := new(MockProductService)
		userRepo := new(MockUserRepository)
		e := newProductTestServer(t, svc, userRepo)

		userRepo.On("GetUserByID", mock.Anything, adminID.Hex()).Return(admin, nil).Once()
		svc.On("CreateDraftProduct", mock.Anything, admin).Return(domain.Product{Name: "Sample name"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		req.Header.Set(echo.HeaderAuthorization, bearerToken(t, admin))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestProductController_CreateProductReview(t *testing.T) {
	userID := primitive.NewObjectID()
	reviewer := domain.User{ID: userID, Name: "Jane"}

	svc := new(MockProductService)
	userRepo := new(MockUserRepository)
	e := newProductTestServer(t, svc, userRepo)

	userRepo.On("GetUserByID", mock.Anything, userID.Hex()).Return(reviewer, nil).Once()
	svc.On("AddProductReview", mock.Anything, "abc", dto.ReviewRequest{Rating: 5, Comment: "great"}, reviewer).Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/products/abc/reviews", jsonBody(t, dto.ReviewRequest{Rating: 5, Comment: "great"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, bearerToken(t, reviewer))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Review added", body["message"])
	svc.AssertExpectations(t)
}
