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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderServiceImpl struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	producer  *kafka.Producer
}

func CreateOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, producer *kafka.Producer) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo, userRepo: userRepo, producer: producer}
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest, actingUser domain.User) (order domain.Order, err error) {
	if len(req.OrderItems) == 0 {
		return order, errs.ErrNoOrderItems
	}

	orderItems := make([]domain.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		productID, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			return order, errs.ErrClient
		}

		orderItems = append(orderItems, domain.OrderItem{
			Name:    item.Name,
			Qty:     item.Qty,
			Image:   item.Image,
			Price:   item.Price,
			Product: productID,
		})
	}

	now := time.Now()
	// Monetary fields are trusted as supplied; there is no server-side price
	// recomputation and no stock decrement.
	order = domain.Order{
		User:       actingUser.ID,
		OrderItems: orderItems,
		ShippingAddress: domain.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
		IsPaid:        false,
		IsDelivered:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	orderID, err := s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return
	}

	order.ID = orderID
	return order, nil
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string, actingUser domain.User) (resp dto.OrderResponse, err error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return
	}

	if order.User != actingUser.ID && !actingUser.IsAdmin {
		return resp, errs.ErrNotOrderOwner
	}

	resp.Order = order
	resp.User = dto.OrderUser{ID: order.User.Hex()}

	owner, err := s.userRepo.GetUserByID(ctx, order.User.Hex())
	if err != nil {
		if err != errs.ErrAccountNotFound {
			return resp, err
		}
		// Deleted owner: keep the bare id.
		return resp, nil
	}

	resp.User.Name = owner.Name
	resp.User.Email = owner.Email

	return resp, nil
}

func (s *OrderServiceImpl) GetMyOrders(ctx context.Context, actingUser domain.User) (data []domain.Order, err error) {
	data, err = s.orderRepo.GetOrdersByUser(ctx, actingUser.ID)
	if err != nil {
		return
	}

	if data == nil {
		data = []domain.Order{}
	}

	return data, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (data []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrders(ctx)
	if err != nil {
		return
	}

	owners := map[primitive.ObjectID]domain.User{}
	data = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		owner, ok := owners[order.User]
		if !ok {
			owner, err = s.userRepo.GetUserByID(ctx, order.User.Hex())
			if err != nil && err != errs.ErrAccountNotFound {
				return nil, err
			}
			owners[order.User] = owner
		}

		data = append(data, dto.OrderResponse{
			Order: order,
			User:  dto.OrderUser{ID: order.User.Hex(), Name: owner.Name},
		})
	}

	return data, nil
}

func (s *OrderServiceImpl) PayOrder(ctx context.Context, id string, req dto.PaymentResultRequest) (order domain.Order, err error) {
	order, err = s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return
	}

	paidAt := time.Now()
	paymentResult := domain.PaymentResult{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
	}

	err = s.orderRepo.UpdateOrderPayment(ctx, order.ID, paymentResult, paidAt)
	if err != nil {
		return
	}

	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentResult = &paymentResult
	order.UpdatedAt = paidAt

	if err := s.producer.Publish("order_paid", order); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PayOrder").Msg("")
	}

	return order, nil
}

func (s *OrderServiceImpl) DeliverOrder(ctx context.Context, id string) (order domain.Order, err error) {
	order, err = s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return
	}

	deliveredAt := time.Now()
	err = s.orderRepo.UpdateOrderDelivery(ctx, order.ID, deliveredAt)
	if err != nil {
		return
	}

	order.IsDelivered = true
	order.DeliveredAt = &deliveredAt
	order.UpdatedAt = deliveredAt

	return order, nil
}
