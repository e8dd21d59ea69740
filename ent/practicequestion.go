// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mathsinbites/bitesmith/ent/practicequestion"
)

// PracticeQuestion is the model entity for the PracticeQuestion schema.
type PracticeQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID string `json:"subtopic_id,omitempty"`
	// quick_check or extended
	Category string `json:"category,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// JSON array of 4 answer options
	Options string `json:"options,omitempty"`
	// Index of the correct option
	Answer int `json:"answer,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicequestion.FieldAnswer:
			values[i] = new(sql.NullInt64)
		case practicequestion.FieldID, practicequestion.FieldSubtopicID, practicequestion.FieldCategory, practicequestion.FieldQuestion, practicequestion.FieldOptions, practicequestion.FieldExplanation:
			values[i] = new(sql.NullString)
		case practicequestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeQuestion fields.
func (_m *PracticeQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicequestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case practicequestion.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = value.String
			}
		case practicequestion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case practicequestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case practicequestion.FieldOptions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value.Valid {
				_m.Options = value.String
			}
		case practicequestion.FieldAnswer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = int(value.Int64)
			}
		case practicequestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case practicequestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeQuestion.
// Note that you need to call PracticeQuestion.Unwrap() before calling this method if this PracticeQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeQuestion) Update() *PracticeQuestionUpdateOne {
	return NewPracticeQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeQuestion) Unwrap() *PracticeQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subtopic_id=")
	builder.WriteString(_m.SubtopicID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(_m.Options)
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answer))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeQuestions is a parsable slice of PracticeQuestion.
type PracticeQuestions []*PracticeQuestion
