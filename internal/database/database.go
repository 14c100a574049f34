package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a client and verifies the connection with a ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// ConnectRedis opens a client and verifies the connection with a ping.
func ConnectRedis(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the indexes the app relies on. The unique index on
// orders.orderId backs the generate-and-retry scheme for human-readable ids.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	orderIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "paymentDetails.transactions.transactionId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "totalAmount.bdt", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "customerInfo.name", Value: "text"},
				{Key: "customerInfo.email", Value: "text"},
			},
		},
	}
	if _, err := db.Collection("orders").Indexes().CreateMany(ctx, orderIndexes); err != nil {
		return err
	}

	customerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("customers").Indexes().CreateMany(ctx, customerIndexes); err != nil {
		return err
	}

	categoryIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("categories").Indexes().CreateMany(ctx, categoryIndexes); err != nil {
		return err
	}

	addressIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "customerId", Value: 1}},
		},
	}
	_, err := db.Collection("addresses").Indexes().CreateMany(ctx, addressIndexes)
	return err
}
