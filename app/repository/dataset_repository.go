package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nobel-stats/app/models"
)

// Dataset names used in logs, metrics and storage keys.
const (
	PrizeDataset    = "prize"
	LaureateDataset = "laureate"
)

var ErrDatasetNotFound = errors.New("dataset not found")

// DatasetRepository fetches the two read-only source documents.
type DatasetRepository interface {
	FetchPrizes(ctx context.Context) (*models.PrizeDataset, error)
	FetchLaureates(ctx context.Context) (*models.LaureateDataset, error)
}

func decodePrizes(data []byte) (*models.PrizeDataset, error) {
	var ds models.PrizeDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode %s dataset: %w", PrizeDataset, err)
	}
	return &ds, nil
}

func decodeLaureates(data []byte) (*models.LaureateDataset, error) {
	var ds models.LaureateDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode %s dataset: %w", LaureateDataset, err)
	}
	return &ds, nil
}
