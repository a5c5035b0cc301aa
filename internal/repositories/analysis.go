package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"resumatch/api/internal/models"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository keeps the normalized resume/JD pair and the computed
// report of each scoring action for the session window. The rewrite action
// reads these texts instead of re-deriving them from raw upload state.
type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
}

type analysisRepository struct {
	cache *expirable.LRU[uuid.UUID, *models.Analysis]
}

func NewAnalysisRepository(ttl time.Duration, maxEntries int) AnalysisRepository {
	return &analysisRepository{
		cache: expirable.NewLRU[uuid.UUID, *models.Analysis](maxEntries, nil, ttl),
	}
}

// Create implements AnalysisRepository.
func (a *analysisRepository) Create(analysis *models.Analysis) error {
	a.cache.Add(analysis.ID, analysis)
	return nil
}

// FindByID implements AnalysisRepository.
func (a *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	analysis, ok := a.cache.Get(id)
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	return analysis, nil
}
