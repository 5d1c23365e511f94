package service

import (
	"context"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/infrastructure/message-queue/kafka"
	"github.com/keerthanakottapalli/ShopSphere/internal/repository"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	productPageSize      = 10
	topProductsLimit     = 3
	topProductsMinRating = 4
	reviewWriteAttempts  = 3
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	producer    *kafka.Producer
}

func CreateProductService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, producer *kafka.Producer) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, orderRepo: orderRepo, producer: producer}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, keyword string, pageNumber int64) (resp dto.ProductListResponse, err error) {
	if pageNumber < 1 {
		pageNumber = 1
	}

	count, err := s.productRepo.CountProducts(ctx, keyword)
	if err != nil {
		return
	}

	products, err := s.productRepo.GetProducts(ctx, keyword, productPageSize, productPageSize*(pageNumber-1))
	if err != nil {
		return
	}

	if products == nil {
		products = []domain.Product{}
	}

	resp.Products = products
	resp.Page = pageNumber
	resp.Pages = (count + productPageSize - 1) / productPageSize

	return resp, nil
}

func (s *ProductServiceImpl) GetTopProducts(ctx context.Context) (data []domain.Product, err error) {
	data, err = s.productRepo.GetTopProducts(ctx, topProductsMinRating, topProductsLimit)
	if err != nil {
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.productRepo.GetProductByID(ctx, id)
}

// CreateDraftProduct scaffolds a blank product with placeholder content for
// the admin to edit afterwards. The request body is intentionally ignored.
func (s *ProductServiceImpl) CreateDraftProduct(ctx context.Context, actingUser domain.User) (product domain.Product, err error) {
	now := time.Now()
	product = domain.Product{
		User:        actingUser.ID,
		Name:        "Sample name",
		Description: "Sample description",
		Price:       0,
		Stock:       0,
		Category:    "Electronics",
		Image:       "/images/sample.jpg",
		Brand:       "Generic Brand",
		Rating:      0,
		NumReviews:  0,
		Reviews:     []domain.Review{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	productID, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID

	if err := s.producer.Publish("add_product", product); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateDraftProduct").Msg("")
	}

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (product domain.Product, err error) {
	product, err = s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	// Only fields present in the request replace stored values.
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	product.UpdatedAt = time.Now()

	err = s.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		return
	}

	if err := s.producer.Publish("update_product", product); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	err = s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	if err := s.producer.Publish("delete_product", map[string]string{"id": id}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
	}

	return nil
}

func (s *ProductServiceImpl) AddProductReview(ctx context.Context, productID string, req dto.ReviewRequest, actingUser domain.User) (err error) {
	if req.Rating < 1 || req.Rating > 5 {
		return errs.ErrClient
	}

	for attempt := 0; attempt < reviewWriteAttempts; attempt++ {
		product, err := s.productRepo.GetProductByID(ctx, productID)
		if err != nil {
			return err
		}

		hasPurchased, err := s.orderRepo.HasDeliveredOrderWithProduct(ctx, actingUser.ID, product.ID)
		if err != nil {
			return err
		}
		if !hasPurchased {
			return errs.ErrReviewNotAllowed
		}

		if product.ReviewedBy(actingUser.ID) {
			return errs.ErrAlreadyReviewed
		}

		observedNumReviews := int64(len(product.Reviews))
		product.Reviews = append(product.Reviews, domain.Review{
			User:      actingUser.ID,
			Name:      actingUser.Name,
			Rating:    req.Rating,
			Comment:   req.Comment,
			CreatedAt: time.Now(),
		})
		product.RecalculateRating()
		product.UpdatedAt = time.Now()

		err = s.productRepo.UpdateProductReviews(ctx, product, observedNumReviews)
		if err == errs.ErrConflict {
			// Another review landed between read and write; re-read and retry.
			continue
		}

		return err
	}

	return errs.ErrConflict
}
