package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/translation"
)

type post struct {
	ID        string `gorm:"primaryKey"`
	Title     string
	Body      string
	Published bool
}

type postResource struct {
	*Base
}

func (postResource) Columns() []ColumnSpec {
	return []ColumnSpec{Column("title").Sort(), Column("published")}
}

func (postResource) Fields() []FieldSpec {
	return []FieldSpec{
		Field("title").MarkRequired(),
		Field("body").WithType(FieldHTML),
		Field("published").WithType(FieldCheckbox),
	}
}

type emptyResource struct {
	*Base
}

func (emptyResource) Columns() []ColumnSpec { return []ColumnSpec{} }
func (emptyResource) Fields() []FieldSpec   { return []FieldSpec{} }

func newPostResource(localize translation.Func) postResource {
	return postResource{New(Config{
		DisplayName: "Post",
		Model:       func() any { return &post{} },
		Title:       "title",
		Rules:       map[string]string{"title": "required,max=20"},
		Localize:    localize,
	})}
}

func TestBase_Defaults(t *testing.T) {
	var d Descriptor = emptyResource{New(Config{DisplayName: "Invoice", Model: func() any { return &post{} }})}

	assert.Equal(t, "folder", d.Icon())
	assert.Equal(t, 2000, d.Sort())
	assert.Equal(t, "invoices", d.URIKey())
	assert.Equal(t, "Invoices", d.Label())
	assert.Equal(t, "Invoice", d.SingularLabel())
	assert.Empty(t, d.Columns())
	assert.Empty(t, d.Fields())
	assert.Empty(t, d.Rules())
	assert.Empty(t, d.Filters())
	assert.Empty(t, d.With())
	assert.NotNil(t, d.Rules())
}

func TestBase_Overrides(t *testing.T) {
	d := New(Config{DisplayName: "Invoice", Icon: "receipt", Sort: 10})

	assert.Equal(t, "receipt", d.Icon())
	assert.Equal(t, 10, d.Sort())
}

func TestBase_SingularLabel(t *testing.T) {
	tests := []struct {
		displayName string
		want        string
	}{
		{"Invoices", "Invoice"},
		{"Invoice", "Invoice"},
		{"OrderItem", "Order Item"},
		{"order_items", "Order Item"},
	}

	for _, tt := range tests {
		t.Run(tt.displayName, func(t *testing.T) {
			assert.Equal(t, tt.want, New(Config{DisplayName: tt.displayName}).SingularLabel())
		})
	}
}

func TestBase_Texts(t *testing.T) {
	d := newPostResource(nil)

	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{"create button", d.CreateButtonLabel, "Create Post"},
		{"create toast", d.CreateToastMessage, "The Post was created!"},
		{"update button", d.UpdateButtonLabel, "Update Post"},
		{"update toast", d.UpdateToastMessage, "The Post was updated!"},
		{"delete button", d.DeleteButtonLabel, "Delete Post"},
		{"delete toast", d.DeleteToastMessage, "The Post was deleted!"},
		{"save button", d.SaveButtonLabel, "Save Post"},
		{"error toast", d.ErrorToastMessage, "An error has occurred. Action not taken."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.got()
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, tt.got())
		})
	}
}

func TestBase_TextsLocalizedOnce(t *testing.T) {
	tr := translation.NewTranslator(language.English, nil)
	tr.SetTranslations(language.German, map[string]string{
		"Post":                       "Beitrag",
		"Create :resource":           ":resource erstellen",
		"The :resource was created!": "Der :resource wurde erstellt!",
	})
	d := newPostResource(tr.Instance(language.German))

	assert.Equal(t, "Beitrag", d.SingularLabel())
	assert.Equal(t, "Beitrag erstellen", d.CreateButtonLabel())
	assert.Equal(t, "Der Beitrag wurde erstellt!", d.CreateToastMessage())
}

func TestBase_Title(t *testing.T) {
	d := newPostResource(nil)

	title, err := d.Title(&post{Title: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", title)

	broken := New(Config{DisplayName: "Post", Title: "headline"})
	_, err = broken.Title(&post{Title: "Hello"})
	assert.ErrorIs(t, err, errors.ErrUnknownAttribute)
}

func TestBase_TitleNullable(t *testing.T) {
	type draft struct {
		ID       string `gorm:"primaryKey"`
		Headline *string
	}
	d := New(Config{DisplayName: "Draft", Title: "headline"})

	title, err := d.Title(&draft{})
	require.NoError(t, err)
	assert.Equal(t, "", title)

	headline := "Breaking"
	title, err = d.Title(&draft{Headline: &headline})
	require.NoError(t, err)
	assert.Equal(t, "Breaking", title)
}

func TestBase_NewModel(t *testing.T) {
	d := newPostResource(nil)

	first := d.NewModel()
	second := d.NewModel()
	assert.IsType(t, &post{}, first)
	assert.NotSame(t, first, second)

	assert.Nil(t, New(Config{DisplayName: "Orphan"}).NewModel())
}
