package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nobel-stats/app/models"
)

const (
	prizeCollection    = "prizes"
	laureateCollection = "laureates"
)

type mongoRepository struct {
	db *mongo.Database
}

// NewMongoRepository reads one document per prize and per laureate from
// the "prizes" and "laureates" collections, in insertion order.
func NewMongoRepository(db *mongo.Database) DatasetRepository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) FetchPrizes(ctx context.Context) (*models.PrizeDataset, error) {
	prizes := make([]models.Prize, 0)
	if err := r.findAll(ctx, prizeCollection, &prizes); err != nil {
		return nil, err
	}
	return &models.PrizeDataset{Prizes: prizes}, nil
}

func (r *mongoRepository) FetchLaureates(ctx context.Context) (*models.LaureateDataset, error) {
	laureates := make([]models.Laureate, 0)
	if err := r.findAll(ctx, laureateCollection, &laureates); err != nil {
		return nil, err
	}
	return &models.LaureateDataset{Laureates: laureates}, nil
}

func (r *mongoRepository) findAll(ctx context.Context, collection string, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}
