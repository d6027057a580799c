// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SeenQuestion is the predicate function for seenquestion builders.
type SeenQuestion func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// TestEvent is the predicate function for testevent builders.
type TestEvent func(*sql.Selector)
