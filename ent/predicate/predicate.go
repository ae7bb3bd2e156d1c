// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BrowsingEvent is the predicate function for browsingevent builders.
type BrowsingEvent func(*sql.Selector)

// InterventionEvent is the predicate function for interventionevent builders.
type InterventionEvent func(*sql.Selector)

// PatternSnapshot is the predicate function for patternsnapshot builders.
type PatternSnapshot func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)
