package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/sukryu/pAdmin/pkg/apis/admin/v1alpha1"
	"github.com/sukryu/pAdmin/pkg/controllers"
	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/toast"
)

// ResourceHandler serves the screens and commands of every registered
// resource.
type ResourceHandler struct {
	registry *resource.Registry
	create   controllers.CreateController
	edit     controllers.EditController
	list     controllers.ListController
	toasts   *toast.SessionStore
	logger   *zap.Logger
}

func NewResourceHandler(
	registry *resource.Registry,
	create controllers.CreateController,
	edit controllers.EditController,
	list controllers.ListController,
	toasts *toast.SessionStore,
	logger *zap.Logger,
) *ResourceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler{
		registry: registry,
		create:   create,
		edit:     edit,
		list:     list,
		toasts:   toasts,
		logger:   logger,
	}
}

func (h *ResourceHandler) resolve(c *gin.Context) (resource.Descriptor, bool) {
	d, err := h.registry.Resolve(c.Param("resource"))
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return d, true
}

func (h *ResourceHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, v1alpha1.NewResourceInfoList(h.registry.All()))
}

func (h *ResourceHandler) Meta(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, v1alpha1.NewResourceInfo(d))
}

func (h *ResourceHandler) List(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}

	params := controllers.ListParams{
		Filters: make(map[string]string),
		Sort:    c.Query("sort"),
		Desc:    strings.EqualFold(c.Query("direction"), "desc"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "perPage"),
	}
	for _, f := range d.Filters() {
		if v, ok := c.GetQuery(f.Name); ok {
			params.Filters[f.Name] = v
		}
	}

	screen, err := h.list.Query(c.Request.Context(), d, params)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.render(c, screen)
}

func (h *ResourceHandler) CreateForm(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}

	screen, err := h.create.Query(c.Request.Context(), &controllers.ResourceRequest{Resource: d})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.render(c, screen)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}
	input, err := modelInput(c, d)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var rec toast.Recorder
	result := h.create.Save(c.Request.Context(), &controllers.ResourceRequest{Resource: d, Input: input}, &rec)
	h.redirect(c, rec.Toasts, result)
}

func (h *ResourceHandler) EditForm(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}

	screen, err := h.edit.Query(c.Request.Context(), &controllers.ResourceRequest{Resource: d, ID: c.Param("id")})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.render(c, screen)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}
	input, err := modelInput(c, d)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var rec toast.Recorder
	result := h.edit.Update(c.Request.Context(), &controllers.ResourceRequest{Resource: d, ID: c.Param("id"), Input: input}, &rec)
	h.redirect(c, rec.Toasts, result)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	d, ok := h.resolve(c)
	if !ok {
		return
	}

	var rec toast.Recorder
	result := h.edit.Delete(c.Request.Context(), &controllers.ResourceRequest{Resource: d, ID: c.Param("id")}, &rec)
	h.redirect(c, rec.Toasts, result)
}

// render attaches the toasts carried over from the previous command.
func (h *ResourceHandler) render(c *gin.Context, screen *v1alpha1.Screen) {
	toasts, err := h.toasts.Drain(c.Writer, c.Request)
	if err != nil {
		h.logger.Warn("toasts not restored", zap.Error(err))
	}
	screen.Toasts = toasts
	c.JSON(http.StatusOK, screen)
}

func (h *ResourceHandler) redirect(c *gin.Context, toasts []toast.Toast, result controllers.SaveResult) {
	if err := h.toasts.Flush(c.Writer, c.Request, toasts); err != nil {
		h.logger.Warn("toasts not stored", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, result.Redirect)
}

// modelInput reads the "model" namespace of a JSON body ({"model": {...}}) or
// of a form (model[title]=...). Browsers omit unchecked checkboxes, so a form
// post reports every missing checkbox field of d as false.
func modelInput(c *gin.Context, d resource.Descriptor) (map[string]any, error) {
	if c.ContentType() == binding.MIMEJSON {
		var body struct {
			Model map[string]any `json:"model"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, errors.ErrInvalidInput.WithReason(err.Error())
		}
		if body.Model == nil {
			body.Model = map[string]any{}
		}
		return body.Model, nil
	}

	form := c.PostFormMap("model")
	input := make(map[string]any, len(form))
	for k, v := range form {
		input[k] = v
	}
	for _, f := range d.Fields() {
		if _, ok := input[f.Name]; !ok && f.Type == resource.FieldCheckbox {
			input[f.Name] = false
		}
	}
	return input, nil
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
