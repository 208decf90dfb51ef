package repository

import (
	"context"
	"fmt"
	"time"

	"files-manager/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	filesCollection = "files"

	connectTimeout = 10 * time.Second
	pingTimeout    = 2 * time.Second
)

// MongoClient wraps the document store connection. It implements
// domain.DocumentStore and hands out the two collections the service uses.
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
	logger domain.Logger
}

// NewMongoClient connects to the document store and verifies the connection.
func NewMongoClient(uri, database string, logger domain.Logger) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Connected to document store", "database", database)

	return &MongoClient{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}, nil
}

// Users returns a handle on the users collection.
func (c *MongoClient) Users() *mongo.Collection {
	return c.db.Collection(usersCollection)
}

// Files returns a handle on the files collection.
func (c *MongoClient) Files() *mongo.Collection {
	return c.db.Collection(filesCollection)
}

// IsAlive reports whether the connection to the document store is active.
func (c *MongoClient) IsAlive(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.client.Ping(ctx, readpref.Primary()) == nil
}

// CountUsers returns the number of registered users.
func (c *MongoClient) CountUsers(ctx context.Context) (int64, error) {
	return c.Users().CountDocuments(ctx, bson.D{})
}

// CountFiles returns the number of file nodes.
func (c *MongoClient) CountFiles(ctx context.Context) (int64, error) {
	return c.Files().CountDocuments(ctx, bson.D{})
}

// Close disconnects from the document store.
func (c *MongoClient) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
