package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"nobel-stats/app/models"
)

type fileRepository struct {
	prizePath    string
	laureatePath string
}

// NewFileRepository reads the datasets from JSON files on disk.
func NewFileRepository(prizePath, laureatePath string) DatasetRepository {
	return &fileRepository{prizePath: prizePath, laureatePath: laureatePath}
}

func (r *fileRepository) FetchPrizes(ctx context.Context) (*models.PrizeDataset, error) {
	data, err := r.read(ctx, r.prizePath)
	if err != nil {
		return nil, err
	}
	return decodePrizes(data)
}

func (r *fileRepository) FetchLaureates(ctx context.Context) (*models.LaureateDataset, error) {
	data, err := r.read(ctx, r.laureatePath)
	if err != nil {
		return nil, err
	}
	return decodeLaureates(data)
}

func (r *fileRepository) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
