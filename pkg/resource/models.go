package resource

import (
	"sort"
	"sync"

	"github.com/sukryu/pAdmin/pkg/errors"
)

// ModelRegistry names model factories so manifests can refer to them.
type ModelRegistry struct {
	mu        sync.RWMutex
	factories map[string]ModelFactory
}

func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		factories: make(map[string]ModelFactory),
	}
}

func (m *ModelRegistry) Register(name string, factory ModelFactory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories[name] = factory
}

func (m *ModelRegistry) Resolve(name string) (ModelFactory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.factories[name]
	if !ok {
		return nil, errors.ErrModelNotFound.WithReason(name)
	}
	return f, nil
}

// Models returns one blank instance per registered model, ordered by name,
// for schema migration.
func (m *ModelRegistry) Models() []any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.factories))
	for name := range m.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	models := make([]any, 0, len(names))
	for _, name := range names {
		models = append(models, m.factories[name]())
	}
	return models
}
