package todo

import (
	"fmt"
	"strconv"
)

// RefKind says how a token addresses a todo.
type RefKind int

const (
	// RefID addresses a todo by its numeric id.
	RefID RefKind = iota
	// RefTitle addresses a todo by its title.
	RefTitle
)

func (k RefKind) String() string {
	switch k {
	case RefID:
		return "id"
	case RefTitle:
		return "title"
	default:
		return fmt.Sprintf("RefKind(%d)", int(k))
	}
}

// Ref is a classified token. Only the field matching Kind is meaningful.
type Ref struct {
	Kind  RefKind
	ID    int64
	Title string
}

// Classify resolves a token to an id reference when it parses as an int64,
// otherwise to a title reference. Title references are canonicalised.
func Classify(token string) Ref {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Ref{Kind: RefID, ID: id}
	}
	return Ref{Kind: RefTitle, Title: CanonicalTitle(token)}
}

func (r Ref) String() string {
	if r.Kind == RefID {
		return fmt.Sprintf("id %d", r.ID)
	}
	return fmt.Sprintf("title %q", r.Title)
}
