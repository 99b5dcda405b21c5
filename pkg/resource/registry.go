package resource

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sukryu/pAdmin/pkg/errors"
)

// Registry maps URI keys to descriptors. It is filled at startup and only
// read while serving.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]Descriptor),
	}
}

// Register adds d. Two descriptors resolving to the same URI key are a
// configuration conflict.
func (r *Registry) Register(d Descriptor) error {
	if d.DisplayName() == "" {
		return errors.ErrInvalidResource.WithReason("display name cannot be empty")
	}
	if d.NewModel() == nil {
		return errors.ErrInvalidResource.WithReason(fmt.Sprintf("%s: model factory is missing", d.DisplayName()))
	}

	key := d.URIKey()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.resources[key]; ok {
		return errors.ErrResourceConflict.WithReason(fmt.Sprintf("%s: %s and %s", key, existing.DisplayName(), d.DisplayName()))
	}
	r.resources[key] = d
	return nil
}

func (r *Registry) MustRegister(ds ...Descriptor) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Resolve(uriKey string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.resources[uriKey]
	if !ok {
		return nil, errors.ErrResourceNotFound.WithReason(uriKey)
	}
	return d, nil
}

// All returns the descriptors ordered by Sort, then Label.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	list := make([]Descriptor, 0, len(r.resources))
	for _, d := range r.resources {
		list = append(list, d)
	}
	r.mu.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Sort() != list[j].Sort() {
			return list[i].Sort() < list[j].Sort()
		}
		return list[i].Label() < list[j].Label()
	})
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.resources)
}
