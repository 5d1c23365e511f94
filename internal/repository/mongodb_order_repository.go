package repository

import (
	"context"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return order, errs.ErrOrderNotFound
	}

	filter := bson.D{{Key: "_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return order, errs.ErrOrderNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return order, err
	}

	return order, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByUser(ctx context.Context, userID primitive.ObjectID) (data []domain.Order, err error) {
	filter := bson.D{{Key: "user", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrders(ctx context.Context) (data []domain.Order, err error) {
	cursor, err := r.db.Collection("orders").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderPayment(ctx context.Context, id primitive.ObjectID, paymentResult domain.PaymentResult, paidAt time.Time) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isPaid", Value: true},
		{Key: "paidAt", Value: paidAt},
		{Key: "paymentResult", Value: paymentResult},
		{Key: "updatedAt", Value: paidAt},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderPayment").Msg("Failed to update order")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderDelivery(ctx context.Context, id primitive.ObjectID, deliveredAt time.Time) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isDelivered", Value: true},
		{Key: "deliveredAt", Value: deliveredAt},
		{Key: "updatedAt", Value: deliveredAt},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderDelivery").Msg("Failed to update order")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

func (r *MongoDBOrderRepositoryImpl) HasDeliveredOrderWithProduct(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (found bool, err error) {
	filter := bson.D{
		{Key: "user", Value: userID},
		{Key: "orderItems.product", Value: productID},
		{Key: "isDelivered", Value: true},
	}

	err = r.db.Collection("orders").FindOne(ctx, filter).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "HasDeliveredOrderWithProduct").Msg("")
		return false, err
	}

	return true, nil
}
