package repository

import (
	"context"

	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

// GetUserByEmail returns a zero-ID user when no account matches, so callers
// can distinguish "unknown email" without a sentinel error.
func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, errs.ErrAccountNotFound
	}

	filter := bson.D{{Key: "_id", Value: userID}}

	err = r.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrAccountNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "email", Value: data.Email},
		{Key: "password", Value: data.HashedPassword},
		{Key: "updatedAt", Value: data.UpdatedAt},
	}}}

	result, err := r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrEmailAlreadyUsed
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("Failed to update user")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return nil
}
