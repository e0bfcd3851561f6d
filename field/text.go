package field

// PartContentField selects an attribute of a part's structured text content.
type PartContentField struct{ ident }

var (
	PartContentText     = PartContentField{simple("text")}
	PartContentTextHash = PartContentField{simple("text_hash")}
)

// DefaultPartContentFields returns the default part content selection.
func DefaultPartContentFields() []PartContentField {
	return []PartContentField{PartContentText}
}

// TextURLField selects an attribute of a part's text location object, which
// carries the expiring URL the text is served from.
type TextURLField struct{ ident }

var (
	TextURLText         = TextURLField{simple("text")}
	TextURLRefreshToken = TextURLField{simple("refresh_token")}
)

// DefaultTextURLFields returns the default text location sub-selection.
func DefaultTextURLFields() []TextURLField {
	return []TextURLField{TextURLText}
}
