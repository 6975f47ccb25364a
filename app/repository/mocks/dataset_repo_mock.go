package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nobel-stats/app/models"
)

type MockDatasetRepo struct {
	mock.Mock
}

func (m *MockDatasetRepo) FetchPrizes(ctx context.Context) (*models.PrizeDataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PrizeDataset), args.Error(1)
}

func (m *MockDatasetRepo) FetchLaureates(ctx context.Context) (*models.LaureateDataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LaureateDataset), args.Error(1)
}
