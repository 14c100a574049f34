package address

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores addresses in the "addresses" collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("addresses")}
}

func (r *MongoRepository) ListByCustomer(ctx context.Context, customerID string) ([]Address, error) {
	cur, err := r.col.Find(ctx, bson.M{"customerId": customerID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	addresses := make([]Address, 0)
	if err := cur.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *MongoRepository) Get(ctx context.Context, customerID, addressID string) (Address, error) {
	var a Address
	err := r.col.FindOne(ctx, bson.M{"_id": addressID, "customerId": customerID}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *MongoRepository) Create(ctx context.Context, a Address) (Address, error) {
	a.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *MongoRepository) Update(ctx context.Context, a Address) (Address, error) {
	update := bson.M{"$set": bson.M{
		"label":      a.Label,
		"recipient":  a.Recipient,
		"phone":      a.Phone,
		"line1":      a.Line1,
		"area":       a.Area,
		"city":       a.City,
		"postalCode": a.PostalCode,
		"country":    a.Country,
		"updatedAt":  time.Now().UTC(),
	}}

	var updated Address
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": a.ID, "customerId": a.CustomerID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, customerID, addressID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": addressID, "customerId": customerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
