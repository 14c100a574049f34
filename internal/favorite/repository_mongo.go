package favorite

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository keeps favorites on the customer document itself, in the
// favoriteProductIds array. $addToSet and $pull give set semantics without a
// read-modify-write cycle.
type MongoRepository struct {
	customers *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{customers: db.Collection("customers")}
}

type favoritesDoc struct {
	FavoriteProductIDs []string `bson:"favoriteProductIds"`
}

func (r *MongoRepository) Add(ctx context.Context, customerID, productID string) ([]string, error) {
	var doc favoritesDoc
	err := r.customers.FindOneAndUpdate(ctx,
		bson.M{"_id": customerID},
		bson.M{"$addToSet": bson.M{"favoriteProductIds": productID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.FavoriteProductIDs, nil
}

func (r *MongoRepository) Remove(ctx context.Context, customerID, productID string) ([]string, error) {
	var doc favoritesDoc
	err := r.customers.FindOneAndUpdate(ctx,
		bson.M{"_id": customerID},
		bson.M{"$pull": bson.M{"favoriteProductIds": productID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.FavoriteProductIDs, nil
}

func (r *MongoRepository) List(ctx context.Context, customerID string) ([]string, error) {
	var doc favoritesDoc
	err := r.customers.FindOne(ctx, bson.M{"_id": customerID},
		options.FindOne().SetProjection(bson.M{"favoriteProductIds": 1})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.FavoriteProductIDs, nil
}
