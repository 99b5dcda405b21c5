package controllers

import (
	"context"

	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/apis/admin/v1alpha1"
	"github.com/sukryu/pAdmin/pkg/apis/routes"
	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/store/base"
	"github.com/sukryu/pAdmin/pkg/toast"
)

// EditController renders the edit form of an existing record and updates or
// deletes it.
type EditController interface {
	Query(ctx context.Context, req *ResourceRequest) (*v1alpha1.Screen, error)
	CommandBar(d resource.Descriptor) []v1alpha1.Action
	Update(ctx context.Context, req *ResourceRequest, notify toast.Notifier) SaveResult
	Delete(ctx context.Context, req *ResourceRequest, notify toast.Notifier) SaveResult
}

type editController struct {
	store  base.Repository
	paths  routes.Paths
	logger *zap.Logger
}

func NewEditController(store base.Repository, paths routes.Paths, logger *zap.Logger) EditController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &editController{
		store:  store,
		paths:  paths,
		logger: logger,
	}
}

// load replaces the request model with the stored record req.ID.
func (c *editController) load(ctx context.Context, req *ResourceRequest) error {
	if req.ID == "" {
		return errors.ErrInvalidRequest.WithReason("id cannot be empty")
	}
	req.Model = nil
	model, err := req.model()
	if err != nil {
		return err
	}
	return c.store.Find(ctx, model, req.ID, req.Resource.With()...)
}

func (c *editController) Query(ctx context.Context, req *ResourceRequest) (*v1alpha1.Screen, error) {
	d := req.Resource
	if err := c.load(ctx, req); err != nil {
		return nil, err
	}

	name, err := d.Title(req.Model)
	if err != nil || name == "" {
		name = d.SingularLabel()
	}

	screen := v1alpha1.NewScreen(d, name)
	screen.CommandBar = c.CommandBar(d)
	screen.Fields = d.Fields()
	screen.Data["model"] = req.Model
	return screen, nil
}

func (c *editController) CommandBar(d resource.Descriptor) []v1alpha1.Action {
	return []v1alpha1.Action{
		{Label: d.UpdateButtonLabel(), Method: "update", Icon: "check"},
		{Label: d.DeleteButtonLabel(), Method: "delete", Icon: "trash"},
	}
}

func (c *editController) Update(ctx context.Context, req *ResourceRequest, notify toast.Notifier) SaveResult {
	d := req.Resource
	result := SaveResult{Redirect: c.paths.Route(routes.ResourceList, d.URIKey(), "")}

	err := c.load(ctx, req)
	if err == nil {
		err = persist(ctx, c.store, c.logger, req)
	}
	if err != nil {
		c.logger.Warn("resource not updated",
			zap.String("resource", d.URIKey()),
			zap.String("id", req.ID),
			zap.Error(err),
		)
		notify.Warning(d.ErrorToastMessage())
		result.Err = err
		return result
	}

	c.logger.Info("resource updated", zap.String("resource", d.URIKey()), zap.String("id", req.ID))
	notify.Info(d.UpdateToastMessage())
	result.Saved = true
	return result
}

func (c *editController) Delete(ctx context.Context, req *ResourceRequest, notify toast.Notifier) SaveResult {
	d := req.Resource
	result := SaveResult{Redirect: c.paths.Route(routes.ResourceList, d.URIKey(), "")}

	err := c.load(ctx, req)
	if err == nil {
		err = c.store.Delete(ctx, req.Model)
	}
	if err != nil {
		c.logger.Warn("resource not deleted",
			zap.String("resource", d.URIKey()),
			zap.String("id", req.ID),
			zap.Error(err),
		)
		notify.Warning(d.ErrorToastMessage())
		result.Err = err
		return result
	}

	c.logger.Info("resource deleted", zap.String("resource", d.URIKey()), zap.String("id", req.ID))
	notify.Info(d.DeleteToastMessage())
	result.Saved = true
	return result
}
