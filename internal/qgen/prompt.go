package qgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert educator creating study questions from learning material.

Rules:
- Every question tests understanding of the given statement, not trivia around it.
- Questions share the same core answer but ask from different perspectives.
- Each question is clear, unambiguous, and self-contained.
- Answers are concise: under 200 words.
- Test genuine understanding, not verbatim recall of the statement's wording.`

// buildUserMessage constructs the user message for one card's content.
func buildUserMessage(content string, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Statement: %q\n\n", content)
	fmt.Fprintf(&b, "Generate %d different questions for this statement.\n", opts.NumQuestions)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficultyText(opts.DifficultyMin, opts.DifficultyMax))
	fmt.Fprintf(&b, "Question types to use: %s\n", strings.Join(opts.Types, ", "))

	if opts.IncludeWorldKnowledge {
		b.WriteString("Include world knowledge and context where relevant.\n")
	} else {
		b.WriteString("Focus only on the given statement.\n")
	}

	return b.String()
}

var difficultyNames = map[int]string{
	1: "very easy",
	2: "easy",
	3: "medium",
	4: "hard",
	5: "very hard",
}

// difficultyText renders a difficulty range for the prompt.
func difficultyText(min, max int) string {
	lo, ok := difficultyNames[min]
	if !ok {
		lo = "medium"
	}
	hi, ok := difficultyNames[max]
	if !ok {
		hi = "medium"
	}
	if lo == hi {
		return lo
	}
	return fmt.Sprintf("ranging from %s to %s", lo, hi)
}
