// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GenEventsColumns holds the columns for the "gen_events" table.
	GenEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "artifact_kind", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}
	// GenEventsTable holds the schema information for the "gen_events" table.
	GenEventsTable = &schema.Table{
		Name:       "gen_events",
		Columns:    GenEventsColumns,
		PrimaryKey: []*schema.Column{GenEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "genevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[3]},
			},
			{
				Name:    "genevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{GenEventsColumns[5]},
			},
		},
	}
	// LlmEventsColumns holds the columns for the "llm_events" table.
	LlmEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
	}
	// LlmEventsTable holds the schema information for the "llm_events" table.
	LlmEventsTable = &schema.Table{
		Name:       "llm_events",
		Columns:    LlmEventsColumns,
		PrimaryKey: []*schema.Column{LlmEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[4]},
			},
			{
				Name:    "llmevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmEventsColumns[8]},
			},
		},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "icon", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
		},
	}
	// PracticeQuestionsColumns holds the columns for the "practice_questions" table.
	PracticeQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PracticeQuestionsTable holds the schema information for the "practice_questions" table.
	PracticeQuestionsTable = &schema.Table{
		Name:       "practice_questions",
		Columns:    PracticeQuestionsColumns,
		PrimaryKey: []*schema.Column{PracticeQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicequestion_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeQuestionsColumns[1]},
			},
			{
				Name:    "practicequestion_subtopic_id_category",
				Unique:  false,
				Columns: []*schema.Column{PracticeQuestionsColumns[1], PracticeQuestionsColumns[2]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[1]},
			},
			{
				Name:    "subtopic_topic_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[1], SubtopicsColumns[3]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "learning_path_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "icon", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_learning_path_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
			{
				Name:    "topic_learning_path_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1], TopicsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GenEventsTable,
		LlmEventsTable,
		LearningPathsTable,
		LessonsTable,
		PracticeQuestionsTable,
		SubtopicsTable,
		TopicsTable,
	}
)

func init() {
}
