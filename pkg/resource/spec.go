package resource

// FieldType selects the input control of a form field.
type FieldType string

const (
	FieldInput    FieldType = "input"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldCheckbox FieldType = "checkbox"
	FieldSelect   FieldType = "select"
	FieldPassword FieldType = "password"
	FieldHTML     FieldType = "html"
)

// FieldSpec declares one input control of the create/edit form.
type FieldSpec struct {
	Name        string    `json:"name" yaml:"name"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder"`
	Help        string    `json:"help,omitempty" yaml:"help"`
	Required    bool      `json:"required,omitempty" yaml:"required"`
	Options     []string  `json:"options,omitempty" yaml:"options"`
}

// Field returns a text input labelled after its attribute name.
func Field(name string) FieldSpec {
	return FieldSpec{Name: name, Type: FieldInput, Label: TitleCase(Snake(name, " "))}
}

func (f FieldSpec) WithType(t FieldType) FieldSpec {
	f.Type = t
	return f
}

func (f FieldSpec) WithLabel(label string) FieldSpec {
	f.Label = label
	return f
}

func (f FieldSpec) WithHelp(help string) FieldSpec {
	f.Help = help
	return f
}

func (f FieldSpec) WithOptions(options ...string) FieldSpec {
	f.Type = FieldSelect
	f.Options = options
	return f
}

func (f FieldSpec) MarkRequired() FieldSpec {
	f.Required = true
	return f
}

// ColumnSpec declares one column of the list view.
type ColumnSpec struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	Sortable bool   `json:"sortable,omitempty" yaml:"sortable"`
	Align    string `json:"align,omitempty" yaml:"align"`
}

// Column returns a left aligned column labelled after its attribute name.
func Column(name string) ColumnSpec {
	return ColumnSpec{Name: name, Label: TitleCase(Snake(name, " "))}
}

func (c ColumnSpec) WithLabel(label string) ColumnSpec {
	c.Label = label
	return c
}

func (c ColumnSpec) Sort() ColumnSpec {
	c.Sortable = true
	return c
}

func (c ColumnSpec) AlignRight() ColumnSpec {
	c.Align = "right"
	return c
}

// FilterOperator is how a filter value is compared against its column.
type FilterOperator string

const (
	FilterEquals FilterOperator = "="
	FilterLike   FilterOperator = "like"
)

// FilterSpec declares a list filter exposed as the query parameter Name.
type FilterSpec struct {
	Name     string         `json:"name" yaml:"name"`
	Column   string         `json:"column" yaml:"column"`
	Operator FilterOperator `json:"operator" yaml:"operator"`
}
