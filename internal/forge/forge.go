// Package forge is the in-process generation endpoint: it turns a
// subtopic into a stored lesson or a batch of practice questions by
// prompting a model provider and inserting the validated output into
// the catalog. It satisfies the same Generator contract as the remote
// HTTP client, so the bulk runner can target either interchangeably.
package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mathsinbites/bitesmith/internal/genclient"
	"github.com/mathsinbites/bitesmith/internal/llm"
	"github.com/mathsinbites/bitesmith/internal/store"
)

// Service generates and stores content for single subtopics.
type Service struct {
	catalog  store.CatalogRepo
	provider llm.Provider
	cfg      Config
}

// New creates a forge service.
func New(catalog store.CatalogRepo, provider llm.Provider, cfg Config) *Service {
	return &Service{catalog: catalog, provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title        string           `json:"title"`
	Introduction string           `json:"introduction"`
	Explanation  string           `json:"explanation"`
	Examples     []exampleOutput  `json:"examples"`
	Questions    []questionOutput `json:"questions"`
}

type exampleOutput struct {
	Title   string   `json:"title"`
	Problem string   `json:"problem"`
	Steps   []string `json:"steps"`
}

type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

type practiceOutput struct {
	Questions []questionOutput `json:"questions"`
}

// GenerateLesson creates and stores the lesson for one subtopic,
// along with its quick-check questions. If a lesson already exists the
// call is a no-op reporting StatusExists.
func (s *Service) GenerateLesson(ctx context.Context, subtopicID string) (genclient.Result, error) {
	sub, topic, err := s.lookup(ctx, subtopicID)
	if err != nil {
		return genclient.Result{}, err
	}

	// Guard even though the runner checks first: a concurrent session
	// may have inserted between the check and this call.
	has, err := s.catalog.HasLesson(ctx, subtopicID)
	if err != nil {
		return genclient.Result{}, fmt.Errorf("check existing lesson: %w", err)
	}
	if has {
		return genclient.Result{Status: genclient.StatusExists, Message: "lesson already exists"}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(topic.Name, sub.Name)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.LessonMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return genclient.Result{}, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return genclient.Result{}, fmt.Errorf("parse lesson response: %w", err)
	}
	if out.Title == "" {
		return genclient.Result{}, fmt.Errorf("model returned a lesson without a title")
	}

	if _, err := s.catalog.InsertLesson(ctx, store.Lesson{
		ID:         uuid.NewString(),
		SubtopicID: subtopicID,
		Title:      out.Title,
		Content:    renderLessonContent(out),
		Model:      resp.Model,
	}); err != nil {
		return genclient.Result{}, fmt.Errorf("insert lesson: %w", err)
	}

	inserted, err := s.insertQuestions(ctx, subtopicID, store.CategoryQuickCheck, out.Questions)
	if err != nil {
		return genclient.Result{}, err
	}

	return genclient.Result{
		Status:   genclient.StatusCreated,
		Message:  fmt.Sprintf("lesson created: %s", out.Title),
		Inserted: inserted,
	}, nil
}

// GeneratePractice creates and stores a batch of extended practice
// questions for one subtopic. A subtopic that already has extended
// questions reports StatusExists without touching the model.
func (s *Service) GeneratePractice(ctx context.Context, subtopicID string, count int) (genclient.Result, error) {
	sub, topic, err := s.lookup(ctx, subtopicID)
	if err != nil {
		return genclient.Result{}, err
	}

	existing, err := s.catalog.CountPracticeQuestions(ctx, []string{subtopicID}, store.CategoryExtended)
	if err != nil {
		return genclient.Result{}, fmt.Errorf("count existing questions: %w", err)
	}
	if existing > 0 {
		return genclient.Result{
			Status:   genclient.StatusExists,
			Message:  fmt.Sprintf("already has %d questions", existing),
			Existing: existing,
		}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposePractice)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: practiceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPracticeUserMessage(topic.Name, sub.Name, count)},
		},
		Schema:      PracticeBatchSchema,
		MaxTokens:   s.cfg.PracticeMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return genclient.Result{}, fmt.Errorf("practice generation: %w", err)
	}

	var out practiceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return genclient.Result{}, fmt.Errorf("parse practice response: %w", err)
	}
	if len(out.Questions) == 0 {
		return genclient.Result{}, fmt.Errorf("model returned no questions")
	}

	inserted, err := s.insertQuestions(ctx, subtopicID, store.CategoryExtended, out.Questions)
	if err != nil {
		return genclient.Result{}, err
	}

	return genclient.Result{
		Status:   genclient.StatusCreated,
		Message:  fmt.Sprintf("%d questions created", inserted),
		Inserted: inserted,
	}, nil
}

func (s *Service) lookup(ctx context.Context, subtopicID string) (*store.Subtopic, *store.Topic, error) {
	sub, err := s.catalog.GetSubtopic(ctx, subtopicID)
	if err != nil {
		return nil, nil, fmt.Errorf("load subtopic: %w", err)
	}
	topic, err := s.catalog.GetTopic(ctx, sub.TopicID)
	if err != nil {
		return nil, nil, fmt.Errorf("load topic: %w", err)
	}
	return sub, topic, nil
}

func (s *Service) insertQuestions(ctx context.Context, subtopicID, category string, qs []questionOutput) (int, error) {
	rows := make([]store.PracticeQuestion, 0, len(qs))
	for _, q := range qs {
		if q.Question == "" {
			continue
		}
		options, err := json.Marshal(q.Options)
		if err != nil {
			return 0, fmt.Errorf("marshal options: %w", err)
		}
		rows = append(rows, store.PracticeQuestion{
			ID:          uuid.NewString(),
			SubtopicID:  subtopicID,
			Category:    category,
			Question:    q.Question,
			Options:     string(options),
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := s.catalog.InsertPracticeQuestions(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert questions: %w", err)
	}
	return n, nil
}

// renderLessonContent flattens the structured lesson into the stored
// markdown body: introduction, explanation, then each worked example
// as a titled section.
func renderLessonContent(out lessonOutput) string {
	var b strings.Builder

	b.WriteString(out.Introduction)
	b.WriteString("\n\n")
	b.WriteString(out.Explanation)

	for _, ex := range out.Examples {
		b.WriteString("\n\n## ")
		b.WriteString(ex.Title)
		b.WriteString("\n\n")
		b.WriteString(ex.Problem)
		b.WriteString("\n")
		for i, step := range ex.Steps {
			b.WriteString(fmt.Sprintf("\n%d. %s", i+1, step))
		}
	}

	return b.String()
}
