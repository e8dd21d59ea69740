package forge

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an experienced mathematics teacher writing lessons for secondary school students. Lessons are clear, friendly, and grounded in real-life situations.`

func buildLessonUserMessage(topicName, subtopicName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topicName))
	b.WriteString(fmt.Sprintf("Subtopic: %s\n", subtopicName))

	b.WriteString(`
Instructions:
Create a complete lesson on the subtopic:
1. A short title and a friendly 2-3 sentence introduction connecting the concept to real life.
2. A 3-4 paragraph explanation. Use **bold** for key terms. Separate paragraphs with blank lines.
3. Two worked examples, each with a problem statement and numbered solution steps. End each example's steps with the answer.
4. Exactly three quick-check questions, each with four options, a 0-based answer index, and a one-sentence explanation of the correct option.
5. Write for secondary school students. Plain text math only: use / for fractions and × for multiplication.`)

	return b.String()
}

const practiceSystemPrompt = `You are an experienced mathematics teacher writing exam-style practice questions for secondary school students.`

func buildPracticeUserMessage(topicName, subtopicName string, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topicName))
	b.WriteString(fmt.Sprintf("Subtopic: %s\n", subtopicName))
	b.WriteString(fmt.Sprintf("Number of questions: %d\n", count))

	b.WriteString(`
Instructions:
Create the requested number of multiple-choice practice questions on the subtopic:
1. Each question has four options, a 0-based answer index, and a one-sentence explanation of the correct option.
2. Vary the difficulty from straightforward to challenging; no two questions may test the same calculation.
3. Wrong options should reflect plausible mistakes, not random values.
4. Write for secondary school students. Plain text math only: use / for fractions and × for multiplication.`)

	return b.String()
}
