package controllers

import (
	"context"

	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/apis/admin/v1alpha1"
	"github.com/sukryu/pAdmin/pkg/apis/routes"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/store/base"
	"github.com/sukryu/pAdmin/pkg/toast"
)

// CreateController renders the creation form of a resource and saves new
// records.
type CreateController interface {
	Query(ctx context.Context, req *ResourceRequest) (*v1alpha1.Screen, error)
	CommandBar(d resource.Descriptor) []v1alpha1.Action
	Save(ctx context.Context, req *ResourceRequest, notify toast.Notifier) SaveResult
}

type createController struct {
	store  base.Repository
	paths  routes.Paths
	logger *zap.Logger
}

func NewCreateController(store base.Repository, paths routes.Paths, logger *zap.Logger) CreateController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &createController{
		store:  store,
		paths:  paths,
		logger: logger,
	}
}

func (c *createController) Query(ctx context.Context, req *ResourceRequest) (*v1alpha1.Screen, error) {
	d := req.Resource
	model, err := req.model()
	if err != nil {
		return nil, err
	}

	screen := v1alpha1.NewScreen(d, d.Label())
	screen.CommandBar = c.CommandBar(d)
	screen.Fields = d.Fields()
	screen.Data["model"] = model
	return screen, nil
}

func (c *createController) CommandBar(d resource.Descriptor) []v1alpha1.Action {
	return []v1alpha1.Action{
		{Label: d.SaveButtonLabel(), Method: "save", Icon: "check"},
	}
}

// Save never fails the request. The outcome is reported through notify and
// the result, and the result always redirects to the resource list.
func (c *createController) Save(ctx context.Context, req *ResourceRequest, notify toast.Notifier) SaveResult {
	d := req.Resource
	result := SaveResult{Redirect: c.paths.Route(routes.ResourceList, d.URIKey(), "")}

	if err := persist(ctx, c.store, c.logger, req); err != nil {
		c.logger.Warn("resource not created",
			zap.String("resource", d.URIKey()),
			zap.Error(err),
		)
		notify.Warning(d.ErrorToastMessage())
		result.Err = err
		return result
	}

	c.logger.Info("resource created", zap.String("resource", d.URIKey()))
	notify.Info(d.CreateToastMessage())
	result.Saved = true
	return result
}
