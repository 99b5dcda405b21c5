package routes

import (
	"net/url"
	"path"
	"strings"
)

// Route names. ResourceList is the redirect target of every resource command.
const (
	ResourceList   = "resource.list"
	ResourceCreate = "resource.create"
	ResourceEdit   = "resource.edit"
	ResourceDelete = "resource.delete"
)

// Paths builds URLs under the admin base path.
type Paths struct {
	Base string
}

func NewPaths(base string) Paths {
	return Paths{Base: "/" + strings.Trim(base, "/")}
}

func (p Paths) join(parts ...string) string {
	escaped := make([]string, 0, len(parts)+1)
	escaped = append(escaped, p.Base)
	for _, part := range parts {
		escaped = append(escaped, url.PathEscape(part))
	}
	return path.Join(escaped...)
}

func (p Paths) Login() string {
	return p.join("login")
}

func (p Paths) Catalog() string {
	return p.join("resources")
}

func (p Paths) ListPath(uriKey string) string {
	return p.join("resources", uriKey)
}

func (p Paths) CreatePath(uriKey string) string {
	return p.join("resources", uriKey, "create")
}

func (p Paths) EditPath(uriKey, id string) string {
	return p.join("resources", uriKey, id, "edit")
}

func (p Paths) DeletePath(uriKey, id string) string {
	return p.join("resources", uriKey, id, "delete")
}

// Route resolves a named route.
func (p Paths) Route(name, uriKey, id string) string {
	switch name {
	case ResourceCreate:
		return p.CreatePath(uriKey)
	case ResourceEdit:
		return p.EditPath(uriKey, id)
	case ResourceDelete:
		return p.DeletePath(uriKey, id)
	default:
		return p.ListPath(uriKey)
	}
}
