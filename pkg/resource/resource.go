package resource

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm/schema"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/translation"
)

const (
	DefaultIcon = "folder"
	DefaultSort = 2000
)

// ModelFactory constructs a blank instance of a gorm model (a struct pointer).
type ModelFactory func() any

// Descriptor is the declaration the CRUD screens are generated from.
type Descriptor interface {
	DisplayName() string
	// Title returns the value of the title attribute of instance.
	Title(instance any) (string, error)
	Label() string
	SingularLabel() string
	Icon() string
	Sort() int
	URIKey() string

	// Columns and Fields have no default; every descriptor declares both.
	Columns() []ColumnSpec
	Fields() []FieldSpec

	Rules() map[string]string
	Filters() []FilterSpec
	With() []string

	NewModel() any

	CreateButtonLabel() string
	CreateToastMessage() string
	UpdateButtonLabel() string
	UpdateToastMessage() string
	DeleteButtonLabel() string
	DeleteToastMessage() string
	SaveButtonLabel() string
	ErrorToastMessage() string
}

// Config is the per-type constant configuration of a descriptor.
type Config struct {
	// DisplayName seeds every derived label, e.g. "Invoice" or "Order Item".
	DisplayName string
	Model       ModelFactory
	// Title is the attribute (field or column name) that identifies an instance.
	Title string

	// Icon and Sort fall back to DefaultIcon and DefaultSort when zero.
	Icon string
	Sort int

	Rules   map[string]string
	Filters []FilterSpec
	With    []string

	Localize translation.Func
}

// Base implements every Descriptor method except Columns and Fields.
// Concrete descriptors embed *Base and add those two.
type Base struct {
	cfg Config
}

func New(cfg Config) *Base {
	if cfg.Icon == "" {
		cfg.Icon = DefaultIcon
	}
	if cfg.Sort == 0 {
		cfg.Sort = DefaultSort
	}
	if cfg.Localize == nil {
		cfg.Localize = translation.Identity
	}
	return &Base{cfg: cfg}
}

func (b *Base) DisplayName() string {
	return b.cfg.DisplayName
}

func (b *Base) Title(instance any) (string, error) {
	v, err := Attribute(instance, b.cfg.Title)
	if err != nil {
		return "", err
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "", nil
	}
	return fmt.Sprint(rv.Interface()), nil
}

func (b *Base) Label() string {
	return Plural(b.cfg.DisplayName)
}

func (b *Base) SingularLabel() string {
	return b.cfg.Localize(Singular(TitleCase(Snake(b.cfg.DisplayName, " "))), nil)
}

func (b *Base) Icon() string {
	return b.cfg.Icon
}

func (b *Base) Sort() int {
	return b.cfg.Sort
}

func (b *Base) URIKey() string {
	return URIKey(b.cfg.DisplayName)
}

func (b *Base) Rules() map[string]string {
	rules := make(map[string]string, len(b.cfg.Rules))
	for k, v := range b.cfg.Rules {
		rules[k] = v
	}
	return rules
}

func (b *Base) Filters() []FilterSpec {
	return append([]FilterSpec{}, b.cfg.Filters...)
}

func (b *Base) With() []string {
	return append([]string{}, b.cfg.With...)
}

func (b *Base) NewModel() any {
	if b.cfg.Model == nil {
		return nil
	}
	return b.cfg.Model()
}

func (b *Base) CreateButtonLabel() string {
	return b.text("Create :resource")
}

func (b *Base) CreateToastMessage() string {
	return b.text("The :resource was created!")
}

func (b *Base) UpdateButtonLabel() string {
	return b.text("Update :resource")
}

func (b *Base) UpdateToastMessage() string {
	return b.text("The :resource was updated!")
}

func (b *Base) DeleteButtonLabel() string {
	return b.text("Delete :resource")
}

func (b *Base) DeleteToastMessage() string {
	return b.text("The :resource was deleted!")
}

func (b *Base) SaveButtonLabel() string {
	return b.text("Save :resource")
}

func (b *Base) ErrorToastMessage() string {
	return b.cfg.Localize("An error has occurred. Action not taken.", nil)
}

// text localizes template once; the singular label is already localized.
func (b *Base) text(template string) string {
	return b.cfg.Localize(template, map[string]string{"resource": b.SingularLabel()})
}

var schemaCache sync.Map

// Attribute reads the field named name (Go field name or column name) from a
// gorm model.
func Attribute(instance any, name string) (any, error) {
	s, err := schema.Parse(instance, &schemaCache, namer)
	if err != nil {
		return nil, errors.ErrUnknownAttribute.WithReason(err.Error())
	}
	field := s.LookUpField(name)
	if field == nil {
		return nil, errors.ErrUnknownAttribute.WithReason(fmt.Sprintf("%s.%s", s.Name, name))
	}
	v, _ := field.ValueOf(context.Background(), reflect.ValueOf(instance))
	return v, nil
}
