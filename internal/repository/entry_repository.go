package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sidehustle/internal/model"
)

// ErrNoMatch is returned when a predicate matches no document.
var ErrNoMatch = errors.New("no matching document")

// EntryRepository defines catalog persistence operations.
type EntryRepository interface {
	Find(ctx context.Context, filter bson.M) ([]model.Entry, error)
	FindOne(ctx context.Context, pred IDPredicate) (*model.Entry, error)
	MaxNumericID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, entry *model.Entry) error
	InsertMany(ctx context.Context, entries []model.Entry) (int, error)
	Update(ctx context.Context, pred IDPredicate, set bson.M) (*model.Entry, error)
	Delete(ctx context.Context, pred IDPredicate) (bool, error)
	IncrementViews(ctx context.Context, pred IDPredicate) error
	CategoryCounts(ctx context.Context) ([]model.CategoryCount, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type entryRepository struct {
	coll *mongo.Collection
}

// NewEntryRepository creates a Mongo-backed catalog repository.
func NewEntryRepository(coll *mongo.Collection) EntryRepository {
	return &entryRepository{coll: coll}
}

// Find returns entries matching filter in catalog sort order.
func (r *entryRepository) Find(ctx context.Context, filter bson.M) ([]model.Entry, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(SortOrder()))
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	entries := []model.Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	for i := range entries {
		entries[i].Normalize()
	}
	return entries, nil
}

// FindOne returns the first entry matching pred or ErrNoMatch.
func (r *entryRepository) FindOne(ctx context.Context, pred IDPredicate) (*model.Entry, error) {
	var entry model.Entry
	if err := r.coll.FindOne(ctx, pred.Filter()).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	entry.Normalize()
	return &entry, nil
}

// MaxNumericID returns the largest display id, or 0 for an empty collection.
func (r *entryRepository) MaxNumericID(ctx context.Context) (int64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "id", Value: -1}}).
		SetProjection(bson.D{{Key: "id", Value: 1}})

	var last struct {
		ID int64 `bson:"id"`
	}
	if err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("find max id: %w", err)
	}
	return last.ID, nil
}

// Insert stores entry and records the generated opaque key on it.
func (r *entryRepository) Insert(ctx context.Context, entry *model.Entry) error {
	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ObjectID = oid
	}
	return nil
}

// InsertMany stores entries in one batch and returns how many were written.
func (r *entryRepository) InsertMany(ctx context.Context, entries []model.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(entries))
	for i := range entries {
		docs[i] = entries[i]
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert entries: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// Update applies set to the first entry matching pred and returns the result.
func (r *entryRepository) Update(ctx context.Context, pred IDPredicate, set bson.M) (*model.Entry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entry model.Entry
	err := r.coll.FindOneAndUpdate(ctx, pred.Filter(), bson.M{"$set": set}, opts).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}
	entry.Normalize()
	return &entry, nil
}

// Delete removes the first entry matching pred.
func (r *entryRepository) Delete(ctx context.Context, pred IDPredicate) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, pred.Filter())
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// IncrementViews adds one to the view counter of the first entry matching pred.
func (r *entryRepository) IncrementViews(ctx context.Context, pred IDPredicate) error {
	if _, err := r.coll.UpdateOne(ctx, pred.Filter(), bson.M{"$inc": bson.M{"views": 1}}); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// CategoryCounts groups published entries by category, largest first.
// Entries without a string category are left out.
func (r *entryRepository) CategoryCounts(ctx context.Context) ([]model.CategoryCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: statusClause(string(model.StatusPublished))}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate categories: %w", err)
	}

	var rows []struct {
		Name  bson.RawValue `bson:"_id"`
		Count int64         `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	counts := make([]model.CategoryCount, 0, len(rows))
	for _, row := range rows {
		name, ok := row.Name.StringValueOK()
		if !ok || name == "" {
			continue
		}
		counts = append(counts, model.CategoryCount{Name: name, Count: row.Count})
	}
	return counts, nil
}

// Count returns the number of entries matching filter.
func (r *entryRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *entryRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: -1}, {Key: "lastUpdated", Value: -1}}},
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}
