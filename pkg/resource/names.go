package resource

import (
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm/schema"
)

// Suffix is stripped from descriptor type names by NameWithoutResource.
const Suffix = "Resource"

var namer = schema.NamingStrategy{}

// NameWithoutResource strips a trailing "Resource" from a type name once:
// "InvoiceResource" -> "Invoice".
func NameWithoutResource(typeName string) string {
	return strings.TrimSuffix(typeName, Suffix)
}

// Snake converts "OrderItem" to "order_item" and joins with delimiter.
// Space separated words are converted one by one.
func Snake(name, delimiter string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = namer.ColumnName("", w)
	}
	return strings.ReplaceAll(strings.Join(words, "_"), "_", delimiter)
}

func Kebab(name string) string {
	return Snake(name, "-")
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func Plural(s string) string {
	return inflection.Plural(s)
}

func Singular(s string) string {
	return inflection.Singular(s)
}

// URIKey is the routing segment of a resource: "OrderItem" -> "order-items".
func URIKey(name string) string {
	return Plural(Kebab(name))
}
