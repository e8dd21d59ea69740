// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mathsinbites/bitesmith/ent/genevent"
	"github.com/mathsinbites/bitesmith/ent/learningpath"
	"github.com/mathsinbites/bitesmith/ent/lesson"
	"github.com/mathsinbites/bitesmith/ent/llmevent"
	"github.com/mathsinbites/bitesmith/ent/practicequestion"
	"github.com/mathsinbites/bitesmith/ent/schema"
	"github.com/mathsinbites/bitesmith/ent/subtopic"
	"github.com/mathsinbites/bitesmith/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	geneventFields := schema.GenEvent{}.Fields()
	_ = geneventFields
	// geneventDescTimestamp is the schema descriptor for timestamp field.
	geneventDescTimestamp := geneventFields[0].Descriptor()
	// genevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	genevent.DefaultTimestamp = geneventDescTimestamp.Default.(func() time.Time)
	// geneventDescArtifactKind is the schema descriptor for artifact_kind field.
	geneventDescArtifactKind := geneventFields[1].Descriptor()
	// genevent.ArtifactKindValidator is a validator for the "artifact_kind" field. It is called by the builders before save.
	genevent.ArtifactKindValidator = geneventDescArtifactKind.Validators[0].(func(string) error)
	// geneventDescTopicID is the schema descriptor for topic_id field.
	geneventDescTopicID := geneventFields[2].Descriptor()
	// genevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	genevent.TopicIDValidator = geneventDescTopicID.Validators[0].(func(string) error)
	// geneventDescSubtopicID is the schema descriptor for subtopic_id field.
	geneventDescSubtopicID := geneventFields[3].Descriptor()
	// genevent.SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	genevent.SubtopicIDValidator = geneventDescSubtopicID.Validators[0].(func(string) error)
	// geneventDescOutcome is the schema descriptor for outcome field.
	geneventDescOutcome := geneventFields[4].Descriptor()
	// genevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	genevent.OutcomeValidator = geneventDescOutcome.Validators[0].(func(string) error)
	// geneventDescDetail is the schema descriptor for detail field.
	geneventDescDetail := geneventFields[5].Descriptor()
	// genevent.DefaultDetail holds the default value on creation for the detail field.
	genevent.DefaultDetail = geneventDescDetail.Default.(string)
	// geneventDescLatencyMs is the schema descriptor for latency_ms field.
	geneventDescLatencyMs := geneventFields[6].Descriptor()
	// genevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	genevent.DefaultLatencyMs = geneventDescLatencyMs.Default.(int64)
	llmeventFields := schema.LLMEvent{}.Fields()
	_ = llmeventFields
	// llmeventDescTimestamp is the schema descriptor for timestamp field.
	llmeventDescTimestamp := llmeventFields[0].Descriptor()
	// llmevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmevent.DefaultTimestamp = llmeventDescTimestamp.Default.(func() time.Time)
	// llmeventDescProvider is the schema descriptor for provider field.
	llmeventDescProvider := llmeventFields[1].Descriptor()
	// llmevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmevent.ProviderValidator = llmeventDescProvider.Validators[0].(func(string) error)
	// llmeventDescModel is the schema descriptor for model field.
	llmeventDescModel := llmeventFields[2].Descriptor()
	// llmevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmevent.ModelValidator = llmeventDescModel.Validators[0].(func(string) error)
	// llmeventDescPurpose is the schema descriptor for purpose field.
	llmeventDescPurpose := llmeventFields[3].Descriptor()
	// llmevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmevent.PurposeValidator = llmeventDescPurpose.Validators[0].(func(string) error)
	// llmeventDescInputTokens is the schema descriptor for input_tokens field.
	llmeventDescInputTokens := llmeventFields[4].Descriptor()
	// llmevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmevent.DefaultInputTokens = llmeventDescInputTokens.Default.(int)
	// llmeventDescOutputTokens is the schema descriptor for output_tokens field.
	llmeventDescOutputTokens := llmeventFields[5].Descriptor()
	// llmevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmevent.DefaultOutputTokens = llmeventDescOutputTokens.Default.(int)
	// llmeventDescLatencyMs is the schema descriptor for latency_ms field.
	llmeventDescLatencyMs := llmeventFields[6].Descriptor()
	// llmevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmevent.DefaultLatencyMs = llmeventDescLatencyMs.Default.(int64)
	// llmeventDescErrorMessage is the schema descriptor for error_message field.
	llmeventDescErrorMessage := llmeventFields[8].Descriptor()
	// llmevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmevent.DefaultErrorMessage = llmeventDescErrorMessage.Default.(string)
	learningpathFields := schema.LearningPath{}.Fields()
	_ = learningpathFields
	// learningpathDescName is the schema descriptor for name field.
	learningpathDescName := learningpathFields[1].Descriptor()
	// learningpath.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learningpath.NameValidator = learningpathDescName.Validators[0].(func(string) error)
	// learningpathDescGrade is the schema descriptor for grade field.
	learningpathDescGrade := learningpathFields[2].Descriptor()
	// learningpath.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	learningpath.GradeValidator = learningpathDescGrade.Validators[0].(func(string) error)
	// learningpathDescIcon is the schema descriptor for icon field.
	learningpathDescIcon := learningpathFields[3].Descriptor()
	// learningpath.DefaultIcon holds the default value on creation for the icon field.
	learningpath.DefaultIcon = learningpathDescIcon.Default.(string)
	// learningpathDescActive is the schema descriptor for active field.
	learningpathDescActive := learningpathFields[4].Descriptor()
	// learningpath.DefaultActive holds the default value on creation for the active field.
	learningpath.DefaultActive = learningpathDescActive.Default.(bool)
	// learningpathDescSortOrder is the schema descriptor for sort_order field.
	learningpathDescSortOrder := learningpathFields[5].Descriptor()
	// learningpath.DefaultSortOrder holds the default value on creation for the sort_order field.
	learningpath.DefaultSortOrder = learningpathDescSortOrder.Default.(int)
	// learningpathDescID is the schema descriptor for id field.
	learningpathDescID := learningpathFields[0].Descriptor()
	// learningpath.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learningpath.IDValidator = learningpathDescID.Validators[0].(func(string) error)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescSubtopicID is the schema descriptor for subtopic_id field.
	lessonDescSubtopicID := lessonFields[1].Descriptor()
	// lesson.SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	lesson.SubtopicIDValidator = lessonDescSubtopicID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescContent is the schema descriptor for content field.
	lessonDescContent := lessonFields[3].Descriptor()
	// lesson.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	lesson.ContentValidator = lessonDescContent.Validators[0].(func(string) error)
	// lessonDescModel is the schema descriptor for model field.
	lessonDescModel := lessonFields[4].Descriptor()
	// lesson.DefaultModel holds the default value on creation for the model field.
	lesson.DefaultModel = lessonDescModel.Default.(string)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[5].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lesson.IDValidator = lessonDescID.Validators[0].(func(string) error)
	practicequestionFields := schema.PracticeQuestion{}.Fields()
	_ = practicequestionFields
	// practicequestionDescSubtopicID is the schema descriptor for subtopic_id field.
	practicequestionDescSubtopicID := practicequestionFields[1].Descriptor()
	// practicequestion.SubtopicIDValidator is a validator for the "subtopic_id" field. It is called by the builders before save.
	practicequestion.SubtopicIDValidator = practicequestionDescSubtopicID.Validators[0].(func(string) error)
	// practicequestionDescCategory is the schema descriptor for category field.
	practicequestionDescCategory := practicequestionFields[2].Descriptor()
	// practicequestion.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	practicequestion.CategoryValidator = practicequestionDescCategory.Validators[0].(func(string) error)
	// practicequestionDescQuestion is the schema descriptor for question field.
	practicequestionDescQuestion := practicequestionFields[3].Descriptor()
	// practicequestion.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	practicequestion.QuestionValidator = practicequestionDescQuestion.Validators[0].(func(string) error)
	// practicequestionDescOptions is the schema descriptor for options field.
	practicequestionDescOptions := practicequestionFields[4].Descriptor()
	// practicequestion.OptionsValidator is a validator for the "options" field. It is called by the builders before save.
	practicequestion.OptionsValidator = practicequestionDescOptions.Validators[0].(func(string) error)
	// practicequestionDescExplanation is the schema descriptor for explanation field.
	practicequestionDescExplanation := practicequestionFields[6].Descriptor()
	// practicequestion.DefaultExplanation holds the default value on creation for the explanation field.
	practicequestion.DefaultExplanation = practicequestionDescExplanation.Default.(string)
	// practicequestionDescCreatedAt is the schema descriptor for created_at field.
	practicequestionDescCreatedAt := practicequestionFields[7].Descriptor()
	// practicequestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicequestion.DefaultCreatedAt = practicequestionDescCreatedAt.Default.(func() time.Time)
	// practicequestionDescID is the schema descriptor for id field.
	practicequestionDescID := practicequestionFields[0].Descriptor()
	// practicequestion.IDValidator is a validator for the "id" field. It is called by the builders before save.
	practicequestion.IDValidator = practicequestionDescID.Validators[0].(func(string) error)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescTopicID is the schema descriptor for topic_id field.
	subtopicDescTopicID := subtopicFields[1].Descriptor()
	// subtopic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	subtopic.TopicIDValidator = subtopicDescTopicID.Validators[0].(func(string) error)
	// subtopicDescName is the schema descriptor for name field.
	subtopicDescName := subtopicFields[2].Descriptor()
	// subtopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subtopic.NameValidator = subtopicDescName.Validators[0].(func(string) error)
	// subtopicDescSortOrder is the schema descriptor for sort_order field.
	subtopicDescSortOrder := subtopicFields[3].Descriptor()
	// subtopic.DefaultSortOrder holds the default value on creation for the sort_order field.
	subtopic.DefaultSortOrder = subtopicDescSortOrder.Default.(int)
	// subtopicDescID is the schema descriptor for id field.
	subtopicDescID := subtopicFields[0].Descriptor()
	// subtopic.IDValidator is a validator for the "id" field. It is called by the builders before save.
	subtopic.IDValidator = subtopicDescID.Validators[0].(func(string) error)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescLearningPathID is the schema descriptor for learning_path_id field.
	topicDescLearningPathID := topicFields[1].Descriptor()
	// topic.LearningPathIDValidator is a validator for the "learning_path_id" field. It is called by the builders before save.
	topic.LearningPathIDValidator = topicDescLearningPathID.Validators[0].(func(string) error)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescIcon is the schema descriptor for icon field.
	topicDescIcon := topicFields[3].Descriptor()
	// topic.DefaultIcon holds the default value on creation for the icon field.
	topic.DefaultIcon = topicDescIcon.Default.(string)
	// topicDescSortOrder is the schema descriptor for sort_order field.
	topicDescSortOrder := topicFields[4].Descriptor()
	// topic.DefaultSortOrder holds the default value on creation for the sort_order field.
	topic.DefaultSortOrder = topicDescSortOrder.Default.(int)
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicFields[0].Descriptor()
	// topic.IDValidator is a validator for the "id" field. It is called by the builders before save.
	topic.IDValidator = topicDescID.Validators[0].(func(string) error)
}
