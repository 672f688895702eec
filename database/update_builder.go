package database

import (
	"fmt"
	"strings"
)

const (
	columnName         = "name"
	columnDescription  = "description"
	columnTitle        = "title"
	columnContent      = "content"
	columnTabs         = "tabs"
	columnActiveTab    = "active_tab"
	columnDefaultTabs  = "default_tabs"
	columnDisplayOrder = "display_order"
	columnUpdatedAt    = "updated_at"
)

// UpdateBuilder accumulates SET assignments for partial updates,
// keeping positional placeholders and args in sync.
type UpdateBuilder struct {
	assignments []string
	args        []interface{}
	argCount    int
}

func NewUpdateBuilder() *UpdateBuilder {
	return &UpdateBuilder{
		assignments: []string{},
		args:        []interface{}{},
		argCount:    1,
	}
}

func (ub *UpdateBuilder) Set(column string, value interface{}) {
	ub.assignments = append(ub.assignments, fmt.Sprintf("%s = $%d", column, ub.argCount))
	ub.args = append(ub.args, value)
	ub.argCount++
}

func (ub *UpdateBuilder) SetClause() string {
	return "SET " + strings.Join(ub.assignments, ", ")
}

func (ub *UpdateBuilder) Args() []interface{} {
	return ub.args
}

func (ub *UpdateBuilder) NextArgNum() int {
	return ub.argCount
}
