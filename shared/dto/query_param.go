package dto

import (
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	sortOptionSeparator = "_"
)

// sortDirections lists the only accepted option suffixes; matching is case sensitive.
var sortDirections = map[string]string{
	"asc":  SortDirAsc,
	"desc": SortDirDesc,
}

type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// ParseSortOption maps a "<field>_<dir>" option such as price_asc onto a whitelisted column.
// Unknown fields or directions, in any other letter case, yield empty QueryParams, which means no ORDER BY.
//
//	q := dto.ParseSortOption("price_desc", map[string]string{"price": "price_per_day"})
//	// q.SortBy == "price_per_day", q.SortDir == "DESC"
func ParseSortOption(option string, columns map[string]string) QueryParams {
	idx := strings.LastIndex(option, sortOptionSeparator)
	if idx <= 0 {
		return QueryParams{}
	}

	column, ok := columns[option[:idx]]
	if !ok {
		return QueryParams{}
	}

	dir, ok := sortDirections[option[idx+1:]]
	if !ok {
		return QueryParams{}
	}

	return QueryParams{SortBy: column, SortDir: dir}
}

// OrderBy renders the ORDER BY clause, or an empty string when no sort is set.
func (q QueryParams) OrderBy() string {
	if q.SortBy == "" || q.SortDir == "" {
		return ""
	}

	return "ORDER BY " + q.SortBy + " " + q.SortDir
}
