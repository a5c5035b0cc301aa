package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"resumatch/api/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository holds extracted upload text for the session window.
// Entries expire after the configured TTL and the store is capacity-bounded,
// so nothing outlives the session and nothing is persisted.
type DocumentRepository interface {
	Create(document *models.Document) error
	FindByID(id uuid.UUID) (*models.Document, error)
}

type documentRepository struct {
	cache *expirable.LRU[uuid.UUID, *models.Document]
}

func NewDocumentRepository(ttl time.Duration, maxEntries int) DocumentRepository {
	return &documentRepository{
		cache: expirable.NewLRU[uuid.UUID, *models.Document](maxEntries, nil, ttl),
	}
}

// Create implements DocumentRepository.
func (d *documentRepository) Create(document *models.Document) error {
	d.cache.Add(document.ID, document)
	return nil
}

// FindByID implements DocumentRepository.
func (d *documentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := d.cache.Get(id)
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}
