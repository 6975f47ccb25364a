package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"nobel-stats/app/models"
)

type httpRepository struct {
	prizeURL    string
	laureateURL string
	timeout     time.Duration
}

// NewHTTPRepository GETs the datasets from the given URLs. timeout bounds
// each request; a shorter context deadline takes precedence.
func NewHTTPRepository(prizeURL, laureateURL string, timeout time.Duration) DatasetRepository {
	return &httpRepository{prizeURL: prizeURL, laureateURL: laureateURL, timeout: timeout}
}

func (r *httpRepository) FetchPrizes(ctx context.Context) (*models.PrizeDataset, error) {
	data, err := r.get(ctx, r.prizeURL)
	if err != nil {
		return nil, err
	}
	return decodePrizes(data)
}

func (r *httpRepository) FetchLaureates(ctx context.Context) (*models.LaureateDataset, error) {
	data, err := r.get(ctx, r.laureateURL)
	if err != nil {
		return nil, err
	}
	return decodeLaureates(data)
}

func (r *httpRepository) get(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	agent := fiber.Get(url)
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("GET %s: %w", url, errors.Join(errs...))
	}
	switch {
	case code == fiber.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, url)
	case code != fiber.StatusOK:
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, code)
	}
	return body, nil
}
