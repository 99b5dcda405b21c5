package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukryu/pAdmin/pkg/errors"
)

func descriptor(name string, sort int) Descriptor {
	return emptyResource{New(Config{
		DisplayName: name,
		Model:       func() any { return &post{} },
		Sort:        sort,
	})}
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		first   Descriptor
		second  Descriptor
		wantErr error
	}{
		{
			name:   "distinct uri keys",
			first:  descriptor("Invoice", 0),
			second: descriptor("Post", 0),
		},
		{
			name:    "same uri key",
			first:   descriptor("Invoice", 0),
			second:  descriptor("Invoices", 0),
			wantErr: errors.ErrResourceConflict,
		},
		{
			name:    "missing display name",
			first:   descriptor("Invoice", 0),
			second:  descriptor("", 0),
			wantErr: errors.ErrInvalidResource,
		},
		{
			name:    "missing model factory",
			first:   descriptor("Invoice", 0),
			second:  emptyResource{New(Config{DisplayName: "Post"})},
			wantErr: errors.ErrInvalidResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			require.NoError(t, r.Register(tt.first))

			err := r.Register(tt.second)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 1, r.Len())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 2, r.Len())
			}
		})
	}
}

func TestRegistry_URIKeysUnique(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(descriptor("Invoice", 0), descriptor("OrderItem", 0), descriptor("Post", 0))

	seen := map[string]bool{}
	for _, d := range r.All() {
		assert.False(t, seen[d.URIKey()], "duplicate uri key %s", d.URIKey())
		seen[d.URIKey()] = true
	}
	assert.Len(t, seen, 3)

	assert.Panics(t, func() { r.MustRegister(descriptor("Invoice", 1)) })
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(descriptor("OrderItem", 0))

	d, err := r.Resolve("order-items")
	require.NoError(t, err)
	assert.Equal(t, "OrderItem", d.DisplayName())

	_, err = r.Resolve("invoices")
	assert.ErrorIs(t, err, errors.ErrResourceNotFound)
}

func TestRegistry_AllOrdering(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		descriptor("Post", 0),
		descriptor("Invoice", 0),
		descriptor("Customer", 100),
		descriptor("Category", 3000),
	)

	var labels []string
	for _, d := range r.All() {
		labels = append(labels, d.Label())
	}
	assert.Equal(t, []string{"Customers", "Invoices", "Posts", "Categories"}, labels)
}
