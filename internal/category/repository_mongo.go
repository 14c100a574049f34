package category

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores categories in the "categories" collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("categories")}
}

func (r *MongoRepository) List(ctx context.Context) ([]Category, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	categories := make([]Category, 0)
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoRepository) GetBySlug(ctx context.Context, slug string) (Category, error) {
	var c Category
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *MongoRepository) Create(ctx context.Context, c Category) (Category, error) {
	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Category{}, ErrSlugExists
		}
		return Category{}, err
	}
	return c, nil
}
