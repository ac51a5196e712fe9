package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/aromahub/perfumeshop/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const perfumeCollection = "perfumes"

// PerfumeRepository stores perfumes in a Mongo collection.
type PerfumeRepository struct {
	col *mongo.Collection
}

func NewPerfumeRepository(db *mongo.Database) *PerfumeRepository {
	return &PerfumeRepository{col: db.Collection(perfumeCollection)}
}

// EnsureIndexes creates the categorical single-field indexes and the text
// index backing full-text search.
func (r *PerfumeRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "gender", Value: 1}}},
		{Keys: bson.D{{Key: "concentration", Value: 1}}},
		{Keys: bson.D{{Key: "isPopular", Value: 1}}},
		{Keys: bson.D{{Key: "isNewArrival", Value: 1}}},
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "brand", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "tags", Value: "text"},
		}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create perfume indexes: %w", err)
	}
	return nil
}

func (r *PerfumeRepository) Find(ctx context.Context, q domain.Query) ([]*domain.Perfume, error) {
	filter := bson.M{}
	if q.Gender != nil {
		filter["gender"] = *q.Gender
	}
	if q.Concentration != nil {
		filter["concentration"] = *q.Concentration
	}
	if q.Popular != nil {
		filter["isPopular"] = *q.Popular
	}
	if q.NewArrival != nil {
		filter["isNewArrival"] = *q.NewArrival
	}
	if q.Search != "" {
		filter["$text"] = bson.M{"$search": q.Search}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find perfumes: %w", err)
	}
	return decodePerfumes(ctx, cursor)
}

func (r *PerfumeRepository) FindAll(ctx context.Context) ([]*domain.Perfume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find all perfumes: %w", err)
	}
	return decodePerfumes(ctx, cursor)
}

func (r *PerfumeRepository) FindByID(ctx context.Context, id string) (*domain.Perfume, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var p domain.Perfume
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find perfume: %w", err)
	}
	return &p, nil
}

func (r *PerfumeRepository) Insert(ctx context.Context, p *domain.Perfume) error {
	stamp(p)
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert perfume: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *PerfumeRepository) InsertMany(ctx context.Context, perfumes []*domain.Perfume) error {
	docs := make([]any, 0, len(perfumes))
	for _, p := range perfumes {
		stamp(p)
		docs = append(docs, p)
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert perfumes: %w", err)
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(perfumes) {
			perfumes[i].ID = oid
		}
	}
	return nil
}

func (r *PerfumeRepository) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Perfume, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Brand != nil {
		set["brand"] = *patch.Brand
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.Concentration != nil {
		set["concentration"] = *patch.Concentration
	}
	if patch.IsPopular != nil {
		set["isPopular"] = *patch.IsPopular
	}
	if patch.IsNewArrival != nil {
		set["isNewArrival"] = *patch.IsNewArrival
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.Perfume
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update perfume: %w", err)
	}
	return &updated, nil
}

func (r *PerfumeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete perfume: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PerfumeRepository) Ping(ctx context.Context) error {
	return r.col.Database().Client().Ping(ctx, readpref.Primary())
}

func stamp(p *domain.Perfume) {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func decodePerfumes(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Perfume, error) {
	defer cursor.Close(ctx)

	perfumes := []*domain.Perfume{}
	for cursor.Next(ctx) {
		var p domain.Perfume
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode perfume: %w", err)
		}
		perfumes = append(perfumes, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate perfumes: %w", err)
	}
	return perfumes, nil
}
