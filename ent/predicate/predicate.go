// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GenEvent is the predicate function for genevent builders.
type GenEvent func(*sql.Selector)

// LLMEvent is the predicate function for llmevent builders.
type LLMEvent func(*sql.Selector)

// LearningPath is the predicate function for learningpath builders.
type LearningPath func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// PracticeQuestion is the predicate function for practicequestion builders.
type PracticeQuestion func(*sql.Selector)

// Subtopic is the predicate function for subtopic builders.
type Subtopic func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
