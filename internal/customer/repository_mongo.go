package customer

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository stores customers as documents in a `customers` collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("customers")}
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Customer, error) {
	var c Customer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (Customer, error) {
	var c Customer
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *MongoRepository) Create(ctx context.Context, c Customer) (Customer, error) {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Customer{}, ErrEmailExists
		}
		return Customer{}, err
	}
	return c, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, c Customer) (Customer, error) {
	c.ID = id
	c.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, c)
	if err != nil {
		return Customer{}, err
	}
	if res.MatchedCount == 0 {
		return Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *MongoRepository) AddOrderID(ctx context.Context, customerID, orderID string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": customerID},
		bson.M{
			"$addToSet": bson.M{"orderIds": orderID},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
