// Code generated by ent, DO NOT EDIT.

package practicequestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathsinbites/bitesmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldID, id))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldSubtopicID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldCategory, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldQuestion, v))
}

// Options applies equality check predicate on the "options" field. It's identical to OptionsEQ.
func Options(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldOptions, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldExplanation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldSubtopicID, v))
}

// SubtopicIDContains applies the Contains predicate on the "subtopic_id" field.
func SubtopicIDContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldSubtopicID, v))
}

// SubtopicIDHasPrefix applies the HasPrefix predicate on the "subtopic_id" field.
func SubtopicIDHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldSubtopicID, v))
}

// SubtopicIDHasSuffix applies the HasSuffix predicate on the "subtopic_id" field.
func SubtopicIDHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldSubtopicID, v))
}

// SubtopicIDEqualFold applies the EqualFold predicate on the "subtopic_id" field.
func SubtopicIDEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldSubtopicID, v))
}

// SubtopicIDContainsFold applies the ContainsFold predicate on the "subtopic_id" field.
func SubtopicIDContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldSubtopicID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldCategory, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldQuestion, v))
}

// OptionsEQ applies the EQ predicate on the "options" field.
func OptionsEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldOptions, v))
}

// OptionsNEQ applies the NEQ predicate on the "options" field.
func OptionsNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldOptions, v))
}

// OptionsIn applies the In predicate on the "options" field.
func OptionsIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldOptions, vs...))
}

// OptionsNotIn applies the NotIn predicate on the "options" field.
func OptionsNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldOptions, vs...))
}

// OptionsGT applies the GT predicate on the "options" field.
func OptionsGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldOptions, v))
}

// OptionsGTE applies the GTE predicate on the "options" field.
func OptionsGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldOptions, v))
}

// OptionsLT applies the LT predicate on the "options" field.
func OptionsLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldOptions, v))
}

// OptionsLTE applies the LTE predicate on the "options" field.
func OptionsLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldOptions, v))
}

// OptionsContains applies the Contains predicate on the "options" field.
func OptionsContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldOptions, v))
}

// OptionsHasPrefix applies the HasPrefix predicate on the "options" field.
func OptionsHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldOptions, v))
}

// OptionsHasSuffix applies the HasSuffix predicate on the "options" field.
func OptionsHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldOptions, v))
}

// OptionsEqualFold applies the EqualFold predicate on the "options" field.
func OptionsEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldOptions, v))
}

// OptionsContainsFold applies the ContainsFold predicate on the "options" field.
func OptionsContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldOptions, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v int) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeQuestion) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeQuestion) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeQuestion) predicate.PracticeQuestion {
	return predicate.PracticeQuestion(sql.NotPredicates(p))
}
