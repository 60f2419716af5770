package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/jca-proxy/models"
)

// memoryJcaDataRepository keeps records in process memory. Records are held
// as encoded JSON so callers never share maps with the repository.
type memoryJcaDataRepository struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewMemoryJcaDataRepository returns an empty in-memory [JcaDataRepository].
// It is meant for development and tests: data does not survive a restart.
func NewMemoryJcaDataRepository() JcaDataRepository {
	return &memoryJcaDataRepository{collections: make(map[string]map[string][]byte)}
}

func (m *memoryJcaDataRepository) FindByIdentifier(_ context.Context, collection, identifier string) (models.JcaData, error) {
	m.mu.RLock()
	raw, ok := m.collections[collection][identifier]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrJcaDataNotFound
	}

	record, err := models.UnmarshalJcaData(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalingRecord, err)
	}
	return record, nil
}

func (m *memoryJcaDataRepository) FindAll(_ context.Context, collection string) ([]models.JcaData, error) {
	m.mu.RLock()
	stored := m.collections[collection]
	identifiers := make([]string, 0, len(stored))
	raws := make(map[string][]byte, len(stored))
	for identifier, raw := range stored {
		identifiers = append(identifiers, identifier)
		raws[identifier] = raw
	}
	m.mu.RUnlock()

	slices.Sort(identifiers)

	records := make([]models.JcaData, 0, len(identifiers))
	for _, identifier := range identifiers {
		record, err := models.UnmarshalJcaData(raws[identifier])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnmarshalingRecord, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (m *memoryJcaDataRepository) Upsert(_ context.Context, collection, identifier string, record models.JcaData) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalingRecord, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string][]byte)
	}
	m.collections[collection][identifier] = raw

	return nil
}
