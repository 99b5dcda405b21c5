package base

import (
	"context"
)

// Filter narrows a list query to rows whose Column compares to Value.
type Filter struct {
	Column   string
	Operator string // "=" or "like"
	Value    any
}

// ListQuery describes one page of a resource list.
type ListQuery struct {
	With    []string
	Filters []Filter
	SortBy  string
	Desc    bool
	Limit   int
	Offset  int
}

// Repository persists resource models. Models are pointers to gorm structs
// produced by a resource's model factory.
type Repository interface {
	// Fill assigns values onto model by field or column name without any
	// assignment guard. Callers whitelist the keys.
	Fill(ctx context.Context, model any, values map[string]any) error

	Save(ctx context.Context, model any) error
	Find(ctx context.Context, model any, id string, with ...string) error
	// List returns a slice of the model's type and the unpaged total.
	List(ctx context.Context, model any, q ListQuery) (any, int64, error)
	Delete(ctx context.Context, model any) error
}
