package store

// ArtifactKind names the generated content checked for and produced per
// subtopic.
type ArtifactKind string

const (
	ArtifactLesson   ArtifactKind = "lesson"
	ArtifactPractice ArtifactKind = "practice"
)

// Valid reports whether k is a known artifact kind.
func (k ArtifactKind) Valid() bool {
	return k == ArtifactLesson || k == ArtifactPractice
}
