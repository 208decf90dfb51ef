package repository

import (
	"context"
	"errors"
	"fmt"

	"files-manager/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFileRepository implements domain.FileRepository on the files collection.
// The hierarchy is a flat indexed table: parents are validated by lookup, never
// by following embedded references.
type MongoFileRepository struct {
	client *MongoClient
	logger domain.Logger
}

// NewMongoFileRepository creates a new file repository.
func NewMongoFileRepository(client *MongoClient, logger domain.Logger) *MongoFileRepository {
	return &MongoFileRepository{client: client, logger: logger}
}

// Create inserts a new file node and returns it with its assigned id.
func (r *MongoFileRepository) Create(ctx context.Context, file *domain.FileNode) (*domain.FileNode, error) {
	res, err := r.client.Files().InsertOne(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to insert file: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	file.ID = id
	return file, nil
}

// GetByID returns the file node with the given id, or domain.ErrNotFound.
func (r *MongoFileRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FileNode, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByIDAndOwner returns the file node matching both id and owner, or
// domain.ErrNotFound. Filtering by both fields in a single query keeps
// cross-owner access indistinguishable from true absence.
func (r *MongoFileRepository) GetByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*domain.FileNode, error) {
	return r.findOne(ctx, bson.M{"_id": id, "userId": ownerID})
}

// ListByParent returns one page of the owner's children of the given parent,
// in stable insertion order. Out-of-range pages yield an empty slice.
func (r *MongoFileRepository) ListByParent(ctx context.Context, ownerID primitive.ObjectID, parentID string, page int) ([]*domain.FileNode, error) {
	if page < 0 {
		page = 0
	}
	filter := bson.M{"userId": ownerID, "parentId": parentID}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page) * domain.ListPageSize).
		SetLimit(domain.ListPageSize)

	cursor, err := r.client.Files().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer cursor.Close(ctx)

	files := make([]*domain.FileNode, 0, domain.ListPageSize)
	for cursor.Next(ctx) {
		var f domain.FileNode
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode file: %w", err)
		}
		files = append(files, &f)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error listing files: %w", err)
	}
	return files, nil
}

// SetVisibility flips the isPublic flag of the owner's file and returns the
// updated node, or domain.ErrNotFound when id+owner do not match.
func (r *MongoFileRepository) SetVisibility(ctx context.Context, id, ownerID primitive.ObjectID, isPublic bool) (*domain.FileNode, error) {
	filter := bson.M{"_id": id, "userId": ownerID}
	update := bson.M{"$set": bson.M{"isPublic": isPublic}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var file domain.FileNode
	err := r.client.Files().FindOneAndUpdate(ctx, filter, update, opts).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update file visibility: %w", err)
	}
	return &file, nil
}

func (r *MongoFileRepository) findOne(ctx context.Context, filter bson.M) (*domain.FileNode, error) {
	var file domain.FileNode
	err := r.client.Files().FindOne(ctx, filter).Decode(&file)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file: %w", err)
	}
	return &file, nil
}
