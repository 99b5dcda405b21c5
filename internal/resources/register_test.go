package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/translation"
)

func TestRegister(t *testing.T) {
	registry := resource.NewRegistry()
	require.NoError(t, Register(registry, Models(), filepath.Join("..", "..", "config", "resources"), nil))

	keys := make([]string, 0, registry.Len())
	for _, d := range registry.All() {
		keys = append(keys, d.URIKey())
	}
	assert.Equal(t, []string{"posts", "categories", "invoices", "admin-users"}, keys)

	invoices, err := registry.Resolve("invoices")
	require.NoError(t, err)
	assert.Equal(t, "Invoices", invoices.Label())
	assert.Equal(t, "receipt", invoices.Icon())
	assert.IsType(t, &Invoice{}, invoices.NewModel())
}

func TestRegister_ManifestConflict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts.yaml"), []byte("name: PostResource\nmodel: post\n"), 0o600))

	err := Register(resource.NewRegistry(), Models(), dir, nil)
	assert.ErrorIs(t, err, errors.ErrResourceConflict)
}

func TestPostResource_German(t *testing.T) {
	tr := translation.NewTranslator(language.English, nil)
	require.NoError(t, tr.LoadDir(filepath.Join("..", "..", "config", "lang")))

	d := NewPostResource(tr.Instance(language.German))
	assert.Equal(t, "Beitrag", d.SingularLabel())
	assert.Equal(t, "Beitrag wurde erstellt!", d.CreateToastMessage())
	assert.Equal(t, "Beitrag speichern", d.SaveButtonLabel())
	assert.Equal(t, "Ein Fehler ist aufgetreten. Aktion nicht ausgeführt.", d.ErrorToastMessage())
}

func TestAdminUserResource(t *testing.T) {
	d := NewAdminUserResource(nil)
	assert.Equal(t, "admin-users", d.URIKey())
	assert.Equal(t, "Admin Users", d.Label())
	assert.Equal(t, "Admin User", d.SingularLabel())
	assert.Equal(t, 2000, d.Sort())
}

func TestPostResource_Fields(t *testing.T) {
	d := NewPostResource(nil)

	fields := map[string]resource.FieldSpec{}
	for _, f := range d.Fields() {
		fields[f.Name] = f
	}
	category := fields["category_id"]
	assert.Equal(t, resource.FieldInput, category.Type)
	assert.Equal(t, "Category", category.Label)
	assert.NotEmpty(t, category.Help)
	assert.Empty(t, category.Options)
}
