package controllers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/store/base"
)

// ResourceRequest carries one resource request through a controller.
type ResourceRequest struct {
	Resource resource.Descriptor
	// Model is the blank or loaded instance owned by this request.
	Model any
	// Input is the submitted "model" namespace.
	Input map[string]any
	ID    string
}

// SaveResult is the outcome of a command. Redirect is set on both branches.
type SaveResult struct {
	Saved    bool
	Err      error
	Redirect string
}

func (r *ResourceRequest) model() (any, error) {
	if r.Model == nil {
		r.Model = r.Resource.NewModel()
	}
	if r.Model == nil {
		return nil, errors.ErrModelNotFound.WithReason(r.Resource.DisplayName())
	}
	return r.Model, nil
}

// persist force-fills the declared input onto the request model, validates it
// and saves it.
func persist(ctx context.Context, store base.Repository, logger *zap.Logger, req *ResourceRequest) error {
	d := req.Resource
	model, err := req.model()
	if err != nil {
		return err
	}

	values, dropped, err := resource.Assignable(d.Fields(), req.Input)
	if err != nil {
		return err
	}
	if len(dropped) > 0 {
		logger.Warn("undeclared attributes dropped",
			zap.String("resource", d.URIKey()),
			zap.Strings("attributes", dropped),
		)
	}

	if err := store.Fill(ctx, model, values); err != nil {
		return fmt.Errorf("fill %s: %w", d.URIKey(), err)
	}
	if err := resource.Validate(d, model); err != nil {
		return err
	}
	if err := store.Save(ctx, model); err != nil {
		return fmt.Errorf("save %s: %w", d.URIKey(), err)
	}
	return nil
}
