package resources

import (
	"github.com/sukryu/pAdmin/pkg/resource"
	"github.com/sukryu/pAdmin/pkg/translation"
)

type PostResource struct {
	*resource.Base
}

func NewPostResource(localize translation.Func) PostResource {
	return PostResource{resource.New(resource.Config{
		DisplayName: "Post",
		Model:       func() any { return &Post{} },
		Title:       "title",
		Icon:        "doc",
		Sort:        100,
		Rules: map[string]string{
			"title": "required,max=200",
			"slug":  "omitempty,max=200,lowercase",
		},
		Filters: []resource.FilterSpec{
			{Name: "published", Column: "published", Operator: resource.FilterEquals},
			{Name: "q", Column: "title", Operator: resource.FilterLike},
		},
		With:     []string{"Category"},
		Localize: localize,
	})}
}

func (PostResource) Columns() []resource.ColumnSpec {
	return []resource.ColumnSpec{
		resource.Column("title").Sort(),
		resource.Column("published"),
		resource.Column("created_at").WithLabel("Created").Sort().AlignRight(),
	}
}

func (PostResource) Fields() []resource.FieldSpec {
	return []resource.FieldSpec{
		resource.Field("title").MarkRequired(),
		resource.Field("slug"),
		resource.Field("body").WithType(resource.FieldHTML),
		resource.Field("published").WithType(resource.FieldCheckbox),
		resource.Field("category_id").WithLabel("Category").
			WithHelp("ID of the category, leave empty for none"),
	}
}

type CategoryResource struct {
	*resource.Base
}

func NewCategoryResource(localize translation.Func) CategoryResource {
	return CategoryResource{resource.New(resource.Config{
		DisplayName: "Category",
		Model:       func() any { return &Category{} },
		Title:       "name",
		Icon:        "tag",
		Sort:        200,
		Rules:       map[string]string{"name": "required,max=64"},
		Localize:    localize,
	})}
}

func (CategoryResource) Columns() []resource.ColumnSpec {
	return []resource.ColumnSpec{resource.Column("name").Sort()}
}

func (CategoryResource) Fields() []resource.FieldSpec {
	return []resource.FieldSpec{
		resource.Field("name").MarkRequired(),
		resource.Field("description").WithType(resource.FieldTextarea),
	}
}

type AdminUserResource struct {
	*resource.Base
}

func NewAdminUserResource(localize translation.Func) AdminUserResource {
	return AdminUserResource{resource.New(resource.Config{
		DisplayName: "Admin User",
		Model:       func() any { return &AdminUser{} },
		Title:       "email",
		Icon:        "user",
		Rules:       map[string]string{"email": "required,email"},
		Localize:    localize,
	})}
}

func (AdminUserResource) Columns() []resource.ColumnSpec {
	return []resource.ColumnSpec{resource.Column("email").Sort(), resource.Column("name")}
}

func (AdminUserResource) Fields() []resource.FieldSpec {
	return []resource.FieldSpec{
		resource.Field("email").MarkRequired(),
		resource.Field("name"),
		resource.Field("password").WithType(resource.FieldPassword),
	}
}
