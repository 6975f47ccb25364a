package service

import (
	"time"

	"github.com/google/uuid"

	"nobel-stats/app/models"
)

// Session holds the datasets loaded at startup and the table derived from
// them. It is immutable once built.
type Session struct {
	ID        uuid.UUID
	Prizes    *models.PrizeDataset
	Laureates *models.LaureateDataset
	Counts    *models.CountryTable
	LoadedAt  time.Time
}

// NewSession aggregates the datasets; both must be present.
func NewSession(prizes *models.PrizeDataset, laureates *models.LaureateDataset) (*Session, error) {
	counts, err := Aggregate(prizes, laureates)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.New(),
		Prizes:    prizes,
		Laureates: laureates,
		Counts:    counts,
		LoadedAt:  time.Now().UTC(),
	}, nil
}

// SessionProvider hands out the current session, or nil while loading.
type SessionProvider interface {
	Session() *Session
}
