package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mathsinbites/bitesmith/ent"
	"github.com/mathsinbites/bitesmith/ent/learningpath"
	"github.com/mathsinbites/bitesmith/ent/lesson"
	"github.com/mathsinbites/bitesmith/ent/practicequestion"
	"github.com/mathsinbites/bitesmith/ent/subtopic"
	"github.com/mathsinbites/bitesmith/ent/topic"
)

// ErrNotFound is returned by the single-row getters when no row has the
// requested ID. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// Question categories stored on practice_questions rows.
const (
	CategoryQuickCheck = "quick_check"
	CategoryExtended   = "extended"
)

// LearningPath is a grade/exam track.
type LearningPath struct {
	ID        string
	Name      string
	Grade     string
	Icon      string
	Active    bool
	SortOrder int
}

// Topic belongs to one learning path.
type Topic struct {
	ID             string
	LearningPathID string
	Name           string
	Icon           string
	SortOrder      int
}

// Subtopic belongs to one topic. Artifact presence is never stored
// here; callers derive it live via HasLesson / CountPracticeQuestions.
type Subtopic struct {
	ID        string
	TopicID   string
	Name      string
	SortOrder int
}

// Lesson is a generated lesson artifact.
type Lesson struct {
	ID         string
	SubtopicID string
	Title      string
	Content    string
	Model      string
	CreatedAt  time.Time
}

// PracticeQuestion is one generated multiple-choice question.
type PracticeQuestion struct {
	ID          string
	SubtopicID  string
	Category    string
	Question    string
	Options     string
	Answer      int
	Explanation string
}

// CatalogRepo is the persistence interface over the curriculum catalog
// and its generated artifacts. Reads are ordered by sort_order; the live
// artifact checks hit the database every call on purpose, so that
// concurrent edits from another session are always observed.
type CatalogRepo interface {
	ListLearningPaths(ctx context.Context) ([]LearningPath, error)
	ListTopics(ctx context.Context, pathID string) ([]Topic, error)
	ListSubtopics(ctx context.Context, topicID string) ([]Subtopic, error)
	// Single-row getters return ErrNotFound when the ID has no row.
	GetTopic(ctx context.Context, id string) (*Topic, error)
	GetSubtopic(ctx context.Context, id string) (*Subtopic, error)

	// Live artifact checks.
	HasLesson(ctx context.Context, subtopicID string) (bool, error)
	CountPracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error)
	CountLessons(ctx context.Context, subtopicIDs []string) (int, error)

	// Artifact writes. Deletes back the destructive force-regenerate path;
	// inserts back the in-process generation endpoint.
	DeleteLessons(ctx context.Context, subtopicIDs []string) (int, error)
	DeletePracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error)
	InsertLesson(ctx context.Context, l Lesson) (string, error)
	InsertPracticeQuestions(ctx context.Context, qs []PracticeQuestion) (int, error)

	// Curriculum import. Upserts match by name within the parent so a
	// re-import updates ordering and icons without duplicating rows.
	UpsertLearningPath(ctx context.Context, name, grade, icon string, sortOrder int) (string, error)
	UpsertTopic(ctx context.Context, pathID, name, icon string, sortOrder int) (string, error)
	UpsertSubtopic(ctx context.Context, topicID, name string, sortOrder int) (string, error)
}

type catalogRepo struct {
	client *ent.Client
}

var _ CatalogRepo = (*catalogRepo)(nil)

func (r *catalogRepo) ListLearningPaths(ctx context.Context) ([]LearningPath, error) {
	rows, err := r.client.LearningPath.Query().
		Where(learningpath.Active(true)).
		Order(ent.Asc(learningpath.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LearningPath, len(rows))
	for i, row := range rows {
		out[i] = LearningPath{
			ID:        row.ID,
			Name:      row.Name,
			Grade:     row.Grade,
			Icon:      row.Icon,
			Active:    row.Active,
			SortOrder: row.SortOrder,
		}
	}
	return out, nil
}

func (r *catalogRepo) ListTopics(ctx context.Context, pathID string) ([]Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.LearningPathID(pathID)).
		Order(ent.Asc(topic.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Topic, len(rows))
	for i, row := range rows {
		out[i] = topicFromRow(row)
	}
	return out, nil
}

func (r *catalogRepo) ListSubtopics(ctx context.Context, topicID string) ([]Subtopic, error) {
	rows, err := r.client.Subtopic.Query().
		Where(subtopic.TopicID(topicID)).
		Order(ent.Asc(subtopic.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Subtopic, len(rows))
	for i, row := range rows {
		out[i] = subtopicFromRow(row)
	}
	return out, nil
}

func (r *catalogRepo) GetTopic(ctx context.Context, id string) (*Topic, error) {
	row, err := r.client.Topic.Query().Where(topic.ID(id)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("topic %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	t := topicFromRow(row)
	return &t, nil
}

func (r *catalogRepo) GetSubtopic(ctx context.Context, id string) (*Subtopic, error) {
	row, err := r.client.Subtopic.Query().Where(subtopic.ID(id)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("subtopic %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	s := subtopicFromRow(row)
	return &s, nil
}

func (r *catalogRepo) HasLesson(ctx context.Context, subtopicID string) (bool, error) {
	return r.client.Lesson.Query().
		Where(lesson.SubtopicID(subtopicID)).
		Exist(ctx)
}

func (r *catalogRepo) CountPracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error) {
	if len(subtopicIDs) == 0 {
		return 0, nil
	}
	return r.client.PracticeQuestion.Query().
		Where(
			practicequestion.SubtopicIDIn(subtopicIDs...),
			practicequestion.Category(category),
		).
		Count(ctx)
}

func (r *catalogRepo) CountLessons(ctx context.Context, subtopicIDs []string) (int, error) {
	if len(subtopicIDs) == 0 {
		return 0, nil
	}
	return r.client.Lesson.Query().
		Where(lesson.SubtopicIDIn(subtopicIDs...)).
		Count(ctx)
}

func (r *catalogRepo) DeleteLessons(ctx context.Context, subtopicIDs []string) (int, error) {
	if len(subtopicIDs) == 0 {
		return 0, nil
	}
	return r.client.Lesson.Delete().
		Where(lesson.SubtopicIDIn(subtopicIDs...)).
		Exec(ctx)
}

func (r *catalogRepo) DeletePracticeQuestions(ctx context.Context, subtopicIDs []string, category string) (int, error) {
	if len(subtopicIDs) == 0 {
		return 0, nil
	}
	return r.client.PracticeQuestion.Delete().
		Where(
			practicequestion.SubtopicIDIn(subtopicIDs...),
			practicequestion.Category(category),
		).
		Exec(ctx)
}

func (r *catalogRepo) InsertLesson(ctx context.Context, l Lesson) (string, error) {
	id := l.ID
	if id == "" {
		id = uuid.NewString()
	}
	row, err := r.client.Lesson.Create().
		SetID(id).
		SetSubtopicID(l.SubtopicID).
		SetTitle(l.Title).
		SetContent(l.Content).
		SetModel(l.Model).
		Save(ctx)
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *catalogRepo) InsertPracticeQuestions(ctx context.Context, qs []PracticeQuestion) (int, error) {
	builders := make([]*ent.PracticeQuestionCreate, len(qs))
	for i, q := range qs {
		id := q.ID
		if id == "" {
			id = uuid.NewString()
		}
		builders[i] = r.client.PracticeQuestion.Create().
			SetID(id).
			SetSubtopicID(q.SubtopicID).
			SetCategory(q.Category).
			SetQuestion(q.Question).
			SetOptions(q.Options).
			SetAnswer(q.Answer).
			SetExplanation(q.Explanation)
	}
	if _, err := r.client.PracticeQuestion.CreateBulk(builders...).Save(ctx); err != nil {
		return 0, err
	}
	return len(qs), nil
}

func (r *catalogRepo) UpsertLearningPath(ctx context.Context, name, grade, icon string, sortOrder int) (string, error) {
	existing, err := r.client.LearningPath.Query().
		Where(learningpath.Name(name)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", err
	}
	if existing != nil {
		err = existing.Update().
			SetGrade(grade).
			SetIcon(icon).
			SetSortOrder(sortOrder).
			SetActive(true).
			Exec(ctx)
		return existing.ID, err
	}
	row, err := r.client.LearningPath.Create().
		SetID(uuid.NewString()).
		SetName(name).
		SetGrade(grade).
		SetIcon(icon).
		SetSortOrder(sortOrder).
		Save(ctx)
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *catalogRepo) UpsertTopic(ctx context.Context, pathID, name, icon string, sortOrder int) (string, error) {
	existing, err := r.client.Topic.Query().
		Where(topic.LearningPathID(pathID), topic.Name(name)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", err
	}
	if existing != nil {
		err = existing.Update().
			SetIcon(icon).
			SetSortOrder(sortOrder).
			Exec(ctx)
		return existing.ID, err
	}
	row, err := r.client.Topic.Create().
		SetID(uuid.NewString()).
		SetLearningPathID(pathID).
		SetName(name).
		SetIcon(icon).
		SetSortOrder(sortOrder).
		Save(ctx)
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func (r *catalogRepo) UpsertSubtopic(ctx context.Context, topicID, name string, sortOrder int) (string, error) {
	existing, err := r.client.Subtopic.Query().
		Where(subtopic.TopicID(topicID), subtopic.Name(name)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return "", err
	}
	if existing != nil {
		err = existing.Update().SetSortOrder(sortOrder).Exec(ctx)
		return existing.ID, err
	}
	row, err := r.client.Subtopic.Create().
		SetID(uuid.NewString()).
		SetTopicID(topicID).
		SetName(name).
		SetSortOrder(sortOrder).
		Save(ctx)
	if err != nil {
		return "", err
	}
	return row.ID, nil
}

func topicFromRow(row *ent.Topic) Topic {
	return Topic{
		ID:             row.ID,
		LearningPathID: row.LearningPathID,
		Name:           row.Name,
		Icon:           row.Icon,
		SortOrder:      row.SortOrder,
	}
}

func subtopicFromRow(row *ent.Subtopic) Subtopic {
	return Subtopic{
		ID:        row.ID,
		TopicID:   row.TopicID,
		Name:      row.Name,
		SortOrder: row.SortOrder,
	}
}
