package field

import "strings"

// Field is the interface shared by all selectable API fields. Each resource
// kind has its own field type (StoryField, UserField, ...) so a selection for
// one kind cannot be passed where another kind is expected.
// It is exported so selections can be rendered generically, but sealed so new
// field kinds cannot be defined outside this package.
type Field interface {
	// String returns the wire form of the field: the bare token for simple
	// fields, or "token(sub1,sub2,...)" for composite fields.
	String() string
	// RequiresAuth reports whether requesting the field needs an
	// authenticated session.
	RequiresAuth() bool

	sealed()
}

// ident is the representation embedded by every field kind.
type ident struct {
	token   string
	auth    bool
	grouped bool // distinguishes a composite with an empty sub-selection from a simple field
	sub     []Field
}

func simple(token string) ident {
	return ident{token: token}
}

func authed(token string) ident {
	return ident{token: token, auth: true}
}

func group(token string, sub []Field) ident {
	return ident{token: token, grouped: true, sub: sub}
}

// String renders the wire form of the field. Composite fields always render
// their parenthesized sub-selection, even when it is empty.
func (id ident) String() string {
	if !id.grouped {
		return id.token
	}
	return id.token + "(" + Join(id.sub) + ")"
}

// RequiresAuth reports whether the field may only be requested while
// authenticated. It is a fixed property of the field, not of the request.
func (id ident) RequiresAuth() bool {
	return id.auth
}

func (ident) sealed() {}

// Join renders a selection in its given order as the comma-separated value
// of the fields query parameter. Selections must not repeat a field; order
// is preserved on the wire.
func Join[F Field](selection []F) string {
	parts := make([]string, len(selection))
	for i, f := range selection {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// asFields widens a kind-specific selection to the common interface for
// embedding in a composite field.
func asFields[F Field](selection []F) []Field {
	out := make([]Field, len(selection))
	for i, f := range selection {
		out[i] = f
	}
	return out
}
