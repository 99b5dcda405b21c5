package controllers

import (
	"context"

	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/apis/admin/v1alpha1"
	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/store/base"
)

const (
	DefaultPerPage = 25
	MaxPerPage     = 100
)

// ListParams are the user-controlled parts of a list screen. Filters are keyed
// by filter name.
type ListParams struct {
	Filters map[string]string
	Sort    string
	Desc    bool
	Page    int
	PerPage int
}

// ListController renders the paginated index of a resource.
type ListController interface {
	Query(ctx context.Context, d resource.Descriptor, params ListParams) (*v1alpha1.Screen, error)
	CommandBar(d resource.Descriptor) []v1alpha1.Action
}

type listController struct {
	store  base.Repository
	logger *zap.Logger
}

func NewListController(store base.Repository, logger *zap.Logger) ListController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &listController{
		store:  store,
		logger: logger,
	}
}

func (c *listController) Query(ctx context.Context, d resource.Descriptor, params ListParams) (*v1alpha1.Screen, error) {
	model := d.NewModel()
	if model == nil {
		return nil, errors.ErrModelNotFound.WithReason(d.DisplayName())
	}

	if params.Page < 1 {
		params.Page = 1
	}
	switch {
	case params.PerPage < 1:
		params.PerPage = DefaultPerPage
	case params.PerPage > MaxPerPage:
		params.PerPage = MaxPerPage
	}

	q := base.ListQuery{
		With:    d.With(),
		Filters: filters(d, params.Filters),
		Limit:   params.PerPage,
		Offset:  (params.Page - 1) * params.PerPage,
	}
	if sortable(d, params.Sort) {
		q.SortBy = params.Sort
		q.Desc = params.Desc
	} else if params.Sort != "" {
		c.logger.Debug("sort ignored", zap.String("resource", d.URIKey()), zap.String("column", params.Sort))
	}

	rows, total, err := c.store.List(ctx, model, q)
	if err != nil {
		return nil, err
	}

	screen := v1alpha1.NewScreen(d, d.Label())
	screen.CommandBar = c.CommandBar(d)
	screen.Columns = d.Columns()
	screen.Filters = d.Filters()
	screen.Data["rows"] = rows
	screen.Pagination = &v1alpha1.Pagination{
		Page:    params.Page,
		PerPage: params.PerPage,
		Total:   total,
	}
	return screen, nil
}

func (c *listController) CommandBar(d resource.Descriptor) []v1alpha1.Action {
	return []v1alpha1.Action{
		{Label: d.CreateButtonLabel(), Method: "create", Icon: "plus"},
	}
}

// filters keeps the submitted values whose names the descriptor declares.
func filters(d resource.Descriptor, submitted map[string]string) []base.Filter {
	var out []base.Filter
	for _, f := range d.Filters() {
		value, ok := submitted[f.Name]
		if !ok || value == "" {
			continue
		}
		out = append(out, base.Filter{
			Column:   f.Column,
			Operator: string(f.Operator),
			Value:    value,
		})
	}
	return out
}

func sortable(d resource.Descriptor, column string) bool {
	if column == "" {
		return false
	}
	for _, c := range d.Columns() {
		if c.Name == column && c.Sortable {
			return true
		}
	}
	return false
}
