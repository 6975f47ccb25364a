package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nobel-stats/app/models"
)

// Each dataset is stored whole as one jsonb document:
//
//	CREATE TABLE nobel_datasets (name text PRIMARY KEY, document jsonb NOT NULL);
const datasetQuery = `SELECT document FROM nobel_datasets WHERE name = $1`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) DatasetRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FetchPrizes(ctx context.Context) (*models.PrizeDataset, error) {
	doc, err := r.document(ctx, PrizeDataset)
	if err != nil {
		return nil, err
	}
	return decodePrizes(doc)
}

func (r *postgresRepository) FetchLaureates(ctx context.Context) (*models.LaureateDataset, error) {
	doc, err := r.document(ctx, LaureateDataset)
	if err != nil {
		return nil, err
	}
	return decodeLaureates(doc)
}

func (r *postgresRepository) document(ctx context.Context, name string) ([]byte, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, datasetQuery, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("query %s dataset: %w", name, err)
	}
	return doc, nil
}
