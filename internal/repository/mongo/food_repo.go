package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository"
)

const foodEntryCollectionName = "food_entries"

// mongoFoodEntryRepository implements repository.FoodEntryRepository.
type mongoFoodEntryRepository struct {
	collection *mongo.Collection
}

// NewMongoFoodEntryRepository creates a new FoodEntry repository.
func NewMongoFoodEntryRepository(db *mongo.Database) repository.FoodEntryRepository {
	return &mongoFoodEntryRepository{
		collection: db.Collection(foodEntryCollectionName),
	}
}

// Create inserts a new food entry.
func (r *mongoFoodEntryRepository) Create(ctx context.Context, entry *domain.FoodEntry) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.Date == "" {
		return primitive.NilObjectID, errors.New("food entry requires userId and date")
	}
	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted food entry ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single food entry owned by the user.
func (r *mongoFoodEntryRepository) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.FoodEntry, error) {
	var entry domain.FoodEntry
	filter := bson.M{"_id": id, "userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetAll retrieves every food entry of the user, newest first.
func (r *mongoFoodEntryRepository) GetAll(ctx context.Context, userID primitive.ObjectID) ([]domain.FoodEntry, error) {
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	return r.find(ctx, filter, findOptions)
}

// GetByDate retrieves the user's food entries for one calendar date.
func (r *mongoFoodEntryRepository) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodEntry, error) {
	filter := bson.M{"userId": userID, "date": date}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return r.find(ctx, filter, findOptions)
}

func (r *mongoFoodEntryRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.FoodEntry, error) {
	var entries []domain.FoodEntry
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	// Empty slice when nothing matched; not an error.
	return entries, nil
}

// Update replaces the mutable fields of an existing entry. The filter
// includes the owning user so an entry can never be moved across users.
func (r *mongoFoodEntryRepository) Update(ctx context.Context, entry *domain.FoodEntry) error {
	if entry.ID == primitive.NilObjectID {
		return errors.New("food entry ID is required for update")
	}

	filter := bson.M{"_id": entry.ID, "userId": entry.UserID}
	updateDoc := bson.M{
		"$set": bson.M{
			"mealType":    entry.MealType,
			"date":        entry.Date,
			"description": entry.Description,
			"analysis":    entry.Analysis,
			"override":    entry.Override,
			"updatedAt":   time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an entry owned by the user.
func (r *mongoFoodEntryRepository) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	filter := bson.M{"_id": id, "userId": userID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureFoodEntryIndexes creates necessary indexes. Call during startup.
func EnsureFoodEntryIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			// Main query pattern: one user's entries for one date.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := db.Collection(foodEntryCollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}
