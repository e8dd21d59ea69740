// Code generated by ent, DO NOT EDIT.

package genevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mathsinbites/bitesmith/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ArtifactKind applies equality check predicate on the "artifact_kind" field. It's identical to ArtifactKindEQ.
func ArtifactKind(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldArtifactKind, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldTopicID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldSubtopicID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldOutcome, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldDetail, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ArtifactKindEQ applies the EQ predicate on the "artifact_kind" field.
func ArtifactKindEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldArtifactKind, v))
}

// ArtifactKindNEQ applies the NEQ predicate on the "artifact_kind" field.
func ArtifactKindNEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldArtifactKind, v))
}

// ArtifactKindIn applies the In predicate on the "artifact_kind" field.
func ArtifactKindIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldArtifactKind, vs...))
}

// ArtifactKindNotIn applies the NotIn predicate on the "artifact_kind" field.
func ArtifactKindNotIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldArtifactKind, vs...))
}

// ArtifactKindGT applies the GT predicate on the "artifact_kind" field.
func ArtifactKindGT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldArtifactKind, v))
}

// ArtifactKindGTE applies the GTE predicate on the "artifact_kind" field.
func ArtifactKindGTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldArtifactKind, v))
}

// ArtifactKindLT applies the LT predicate on the "artifact_kind" field.
func ArtifactKindLT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldArtifactKind, v))
}

// ArtifactKindLTE applies the LTE predicate on the "artifact_kind" field.
func ArtifactKindLTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldArtifactKind, v))
}

// ArtifactKindContains applies the Contains predicate on the "artifact_kind" field.
func ArtifactKindContains(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContains(FieldArtifactKind, v))
}

// ArtifactKindHasPrefix applies the HasPrefix predicate on the "artifact_kind" field.
func ArtifactKindHasPrefix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasPrefix(FieldArtifactKind, v))
}

// ArtifactKindHasSuffix applies the HasSuffix predicate on the "artifact_kind" field.
func ArtifactKindHasSuffix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasSuffix(FieldArtifactKind, v))
}

// ArtifactKindEqualFold applies the EqualFold predicate on the "artifact_kind" field.
func ArtifactKindEqualFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEqualFold(FieldArtifactKind, v))
}

// ArtifactKindContainsFold applies the ContainsFold predicate on the "artifact_kind" field.
func ArtifactKindContainsFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContainsFold(FieldArtifactKind, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContainsFold(FieldTopicID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldSubtopicID, v))
}

// SubtopicIDContains applies the Contains predicate on the "subtopic_id" field.
func SubtopicIDContains(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContains(FieldSubtopicID, v))
}

// SubtopicIDHasPrefix applies the HasPrefix predicate on the "subtopic_id" field.
func SubtopicIDHasPrefix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasPrefix(FieldSubtopicID, v))
}

// SubtopicIDHasSuffix applies the HasSuffix predicate on the "subtopic_id" field.
func SubtopicIDHasSuffix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasSuffix(FieldSubtopicID, v))
}

// SubtopicIDEqualFold applies the EqualFold predicate on the "subtopic_id" field.
func SubtopicIDEqualFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEqualFold(FieldSubtopicID, v))
}

// SubtopicIDContainsFold applies the ContainsFold predicate on the "subtopic_id" field.
func SubtopicIDContainsFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContainsFold(FieldSubtopicID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldContainsFold(FieldDetail, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.GenEvent {
	return predicate.GenEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenEvent) predicate.GenEvent {
	return predicate.GenEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenEvent) predicate.GenEvent {
	return predicate.GenEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenEvent) predicate.GenEvent {
	return predicate.GenEvent(sql.NotPredicates(p))
}
