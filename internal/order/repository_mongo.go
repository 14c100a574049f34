package order

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores one document per order in the `orders` collection.
// The collection carries a unique index on orderId plus the query indexes
// created at startup.
type MongoRepository struct {
	client    *mongo.Client
	orders    *mongo.Collection
	customers *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		client:    db.Client(),
		orders:    db.Collection("orders"),
		customers: db.Collection("customers"),
	}
}

// Create inserts the order document and upserts its id into the owning
// customer's order set inside one session transaction, so the customer index
// cannot drift from the order collection.
func (r *MongoRepository) Create(ctx context.Context, o Order) (Order, error) {
	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}

	session, err := r.client.StartSession()
	if err != nil {
		return Order{}, err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.orders.InsertOne(sc, o); err != nil {
			return nil, err
		}
		if o.CustomerID != "" {
			_, err := r.customers.UpdateOne(sc,
				bson.M{"_id": o.CustomerID},
				bson.M{"$addToSet": bson.M{"orderIds": o.OrderID}},
			)
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Order{}, ErrDuplicateOrderID
		}
		return Order{}, err
	}
	return o, nil
}

func (r *MongoRepository) GetByOrderID(ctx context.Context, orderID string) (Order, error) {
	var o Order
	err := r.orders.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *MongoRepository) List(ctx context.Context, f ListFilter, opts ListOptions) ([]Order, int64, error) {
	filter := bson.M{}
	if f.CustomerID != "" {
		filter["customerId"] = f.CustomerID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	total, err := r.orders.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSort(parseSort(opts.Sort))
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := r.orders.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	orders := make([]Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, orderID string, status Status, entry TrackingEntry) (Order, error) {
	var o Order
	err := r.orders.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{
			"$set":  bson.M{"status": status, "updatedAt": time.Now().UTC()},
			"$push": bson.M{"trackingHistory": entry},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *MongoRepository) AddTransaction(ctx context.Context, orderID string, tx Transaction) (Order, error) {
	var o Order
	err := r.orders.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{
			"$push": bson.M{"paymentDetails.transactions": tx},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *MongoRepository) FindByTransactionID(ctx context.Context, transactionID string) (Order, error) {
	var o Order
	err := r.orders.FindOne(ctx,
		bson.M{"paymentDetails.transactions.transactionId": transactionID},
	).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

// UpdatePaymentStatus sets paymentDetails.status and annotates the matching
// transaction sub-document via an array filter. The fulfillment status field
// is deliberately left alone.
func (r *MongoRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus, transactionID, note string) (Order, error) {
	var o Order
	err := r.orders.FindOneAndUpdate(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{
			"paymentDetails.status":                   status,
			"paymentDetails.transactions.$[tx].notes": note,
			"updatedAt":                               time.Now().UTC(),
		}},
		options.FindOneAndUpdate().
			SetArrayFilters(options.ArrayFilters{
				Filters: []interface{}{bson.M{"tx.transactionId": transactionID}},
			}).
			SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func parseSort(sort string) bson.D {
	if sort == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	dir := 1
	field := sort
	if strings.HasPrefix(sort, "-") {
		dir = -1
		field = strings.TrimPrefix(sort, "-")
	}
	return bson.D{{Key: field, Value: dir}}
}
