package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"league_table/pkg/errcodes"
)

type SortOrder string

const (
	SortOrderDescending SortOrder = "Descending"
	SortOrderAscending  SortOrder = "Ascending"
)

func (o SortOrder) String() string {
	return string(o)
}

// ParseSortOrder accepts the full order names case-insensitively plus the
// short forms "desc" and "asc". An empty string means Descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "descending", "desc":
		return SortOrderDescending, nil
	case "ascending", "asc":
		return SortOrderAscending, nil
	}

	return "", failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown sort order %q", s),
		failure.WithCode(errcodes.InvalidSortOrder),
		failure.WithDescription(fmt.Sprintf("Sort order must be %s or %s, got %q", SortOrderDescending, SortOrderAscending, s)),
	)
}
