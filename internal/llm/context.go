package llm

import "context"

// Purpose labels what a model call was generating so the event log
// can tell lesson calls apart from practice calls.
type Purpose string

const (
	PurposeLesson   Purpose = "lesson"
	PurposePractice Purpose = "practice"
	PurposeUnknown  Purpose = "unknown"
)

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose returns a context carrying the purpose label.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, p)
}

// PurposeFrom reads the purpose label off the context, defaulting to
// PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
