package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/translation"
)

// Manifest is a resource declared in YAML instead of Go.
//
//	name: Invoice
//	model: invoice
//	title: number
//	columns:
//	  - {name: number, label: Number, sortable: true}
//	fields:
//	  - {name: number, type: input, label: Number, required: true}
//	rules:
//	  number: required,max=32
type Manifest struct {
	// Name may carry the Resource suffix ("InvoiceResource").
	Name    string            `yaml:"name"`
	Model   string            `yaml:"model"`
	Title   string            `yaml:"title"`
	Icon    string            `yaml:"icon"`
	Sort    int               `yaml:"sort"`
	Columns []ColumnSpec      `yaml:"columns"`
	Fields  []FieldSpec       `yaml:"fields"`
	Rules   map[string]string `yaml:"rules"`
	Filters []FilterSpec      `yaml:"filters"`
	With    []string          `yaml:"with"`
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.ErrInvalidResource.WithReason(err.Error())
	}
	if m.Name == "" || m.Model == "" {
		return nil, errors.ErrInvalidResource.WithReason("manifest needs name and model")
	}
	for i := range m.Fields {
		if m.Fields[i].Type == "" {
			m.Fields[i].Type = FieldInput
		}
		if m.Fields[i].Label == "" {
			m.Fields[i].Label = TitleCase(Snake(m.Fields[i].Name, " "))
		}
	}
	for i := range m.Columns {
		if m.Columns[i].Label == "" {
			m.Columns[i].Label = TitleCase(Snake(m.Columns[i].Name, " "))
		}
	}
	for i := range m.Filters {
		if m.Filters[i].Column == "" {
			m.Filters[i].Column = m.Filters[i].Name
		}
		if m.Filters[i].Operator == "" {
			m.Filters[i].Operator = FilterEquals
		}
	}
	return &m, nil
}

// Descriptor binds the manifest to a registered model.
func (m *Manifest) Descriptor(models *ModelRegistry, localize translation.Func) (Descriptor, error) {
	factory, err := models.Resolve(m.Model)
	if err != nil {
		return nil, err
	}
	return &declared{
		Base: New(Config{
			DisplayName: NameWithoutResource(m.Name),
			Model:       factory,
			Title:       m.Title,
			Icon:        m.Icon,
			Sort:        m.Sort,
			Rules:       m.Rules,
			Filters:     m.Filters,
			With:        m.With,
			Localize:    localize,
		}),
		columns: m.Columns,
		fields:  m.Fields,
	}, nil
}

// LoadManifests reads every *.yaml file of dir in name order.
func LoadManifests(dir string, models *ModelRegistry, localize translation.Func) ([]Descriptor, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	descriptors := make([]Descriptor, 0, len(files))
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		m, err := ParseManifest(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		d, err := m.Descriptor(models, localize)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

type declared struct {
	*Base
	columns []ColumnSpec
	fields  []FieldSpec
}

func (d *declared) Columns() []ColumnSpec {
	return append([]ColumnSpec{}, d.columns...)
}

func (d *declared) Fields() []FieldSpec {
	return append([]FieldSpec{}, d.fields...)
}
