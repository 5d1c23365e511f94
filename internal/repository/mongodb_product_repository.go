package repository

import (
	"context"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func productKeywordFilter(keyword string) bson.M {
	if keyword == "" {
		return bson.M{}
	}

	return bson.M{"$text": bson.M{"$search": keyword}}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, keyword string, limit int64, skip int64) (data []domain.Product, err error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip)

	cursor, err := r.db.Collection("products").Find(ctx, productKeywordFilter(keyword), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, keyword string) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, productKeywordFilter(keyword))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetTopProducts(ctx context.Context, minRating float64, limit int64) (data []domain.Product, err error) {
	filter := bson.M{"rating": bson.M{"$gte": minRating}}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit)

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTopProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTopProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrProductNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "stock", Value: data.Stock},
		{Key: "category", Value: data.Category},
		{Key: "image", Value: data.Image},
		{Key: "brand", Value: data.Brand},
		{Key: "updatedAt", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) UpdateProductReviews(ctx context.Context, data domain.Product, observedNumReviews int64) (err error) {
	// The numReviews guard makes the read-modify-write optimistic: a
	// concurrent review bumps the count and this write matches nothing.
	filter := bson.D{
		{Key: "_id", Value: data.ID},
		{Key: "numReviews", Value: observedNumReviews},
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "reviews", Value: data.Reviews},
		{Key: "rating", Value: data.Rating},
		{Key: "numReviews", Value: data.NumReviews},
		{Key: "updatedAt", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductReviews").Msg("Failed to update product reviews")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrConflict
	}

	return nil
}
