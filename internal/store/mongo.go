package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient serves containers from a MongoDB database.
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database

	mu         sync.Mutex
	containers map[string]*mongoContainer
}

// NewMongoClient connects and pings the server. The returned client is
// safe for concurrent use and meant to be constructed once per process.
func NewMongoClient(ctx context.Context, uri, database string) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &MongoClient{
		client:     client,
		db:         client.Database(database),
		containers: make(map[string]*mongoContainer),
	}, nil
}

// Container returns the handle for the named collection, creating it on
// first use and reusing it afterwards.
func (c *MongoClient) Container(name, partitionField string) Container {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.containers[name]; ok {
		return existing
	}
	container := &mongoContainer{
		coll:           c.db.Collection(name),
		partitionField: partitionField,
	}
	c.containers[name] = container
	return container
}

// Backend implements Client.
func (c *MongoClient) Backend() string { return "mongo" }

// Close disconnects the underlying driver client.
func (c *MongoClient) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

type mongoContainer struct {
	coll           *mongo.Collection
	partitionField string
}

func (m *mongoContainer) Create(ctx context.Context, doc interface{}) error {
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (m *mongoContainer) Query(ctx context.Context, q *Query, out interface{}) error {
	opts := options.Find()
	if q.SortField != "" {
		order := 1
		if q.Descending {
			order = -1
		}
		opts.SetSort(bson.D{{Key: q.SortField, Value: order}})
	}
	if q.Offset > 0 {
		opts.SetSkip(int64(q.Offset))
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := m.coll.Find(ctx, mongoFilter(q), opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (m *mongoContainer) Count(ctx context.Context, q *Query) (int64, error) {
	total, err := m.coll.CountDocuments(ctx, mongoFilter(q))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return total, nil
}

func (m *mongoContainer) Upsert(ctx context.Context, id string, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (m *mongoContainer) Delete(ctx context.Context, id, partitionKey string) error {
	filter := bson.M{"_id": id, m.partitionField: partitionKey}
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// mongoFilter translates the shared query filters into a bson document.
// Multiple operators on the same field merge into one clause.
func mongoFilter(q *Query) bson.M {
	filter := bson.M{}
	for _, f := range q.Filters {
		switch f.Op {
		case OpEq:
			filter[f.Field] = f.Value
		case OpGte, OpLte:
			clause, ok := filter[f.Field].(bson.M)
			if !ok {
				clause = bson.M{}
				filter[f.Field] = clause
			}
			clause["$"+string(f.Op)] = f.Value
		}
	}
	return filter
}
