package resources

import (
	"fmt"

	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/translation"
)

// Models names every model manifests may bind to.
func Models() *resource.ModelRegistry {
	models := resource.NewModelRegistry()
	models.Register("category", func() any { return &Category{} })
	models.Register("post", func() any { return &Post{} })
	models.Register("invoice", func() any { return &Invoice{} })
	models.Register("admin_user", func() any { return &AdminUser{} })
	return models
}

// Register adds the built-in descriptors and those declared in manifestDir.
func Register(registry *resource.Registry, models *resource.ModelRegistry, manifestDir string, localize translation.Func) error {
	builtin := []resource.Descriptor{
		NewPostResource(localize),
		NewCategoryResource(localize),
		NewAdminUserResource(localize),
	}
	for _, d := range builtin {
		if err := registry.Register(d); err != nil {
			return err
		}
	}

	if manifestDir == "" {
		return nil
	}
	declared, err := resource.LoadManifests(manifestDir, models, localize)
	if err != nil {
		return fmt.Errorf("load manifests: %w", err)
	}
	for _, d := range declared {
		if err := registry.Register(d); err != nil {
			return err
		}
	}
	return nil
}
