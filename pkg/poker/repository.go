package poker

import (
	"fmt"
	"sync"

	"github.com/decred/slog"
	"github.com/google/uuid"
)

// Repository is a keyed store of live tables, owned by the surrounding
// application layer and injected wherever tables are looked up. Tables are
// independently locked, so concurrent actions on different tables never
// block one another here; the repository's own lock guards only the map.
type Repository struct {
	log    slog.Logger
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRepository creates an empty table repository.
func NewRepository(log slog.Logger) *Repository {
	if log == nil {
		log = slog.Disabled
	}
	return &Repository{
		log:    log,
		tables: make(map[string]*Table),
	}
}

// CreateTable creates, seats and registers a new table. A missing config ID
// is assigned a fresh UUID.
func (r *Repository) CreateTable(cfg TableConfig, occupants []Occupant) (*Table, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[cfg.ID]; exists {
		return nil, fmt.Errorf("%w: duplicate table id %s", ErrInvalidSetting, cfg.ID)
	}

	t, err := NewTable(cfg, occupants)
	if err != nil {
		return nil, err
	}
	r.tables[cfg.ID] = t
	r.log.Infof("table %s registered (%d occupants)", cfg.ID, len(occupants))
	return t, nil
}

// GetTable returns the table with the given ID.
func (r *Repository) GetTable(id string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, id)
	}
	return t, nil
}

// RemoveTable tears a table down, cancelling any bot sequence mid-pacing,
// and drops it from the store.
func (r *Repository) RemoveTable(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, id)
	}
	t.Close()
	delete(r.tables, id)
	r.log.Infof("table %s removed", id)
	return nil
}

// Len returns the number of registered tables.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
