package grader

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are evaluating a student's answer to a study question. BE VERY STRICT.

CRITICAL EVALUATION RULES - FOLLOW EXACTLY:
1. If the student says "I forgot", "I don't know", "No idea", "Not sure", or any variation = INCORRECT.
2. If the student gives empty, meaningless, or placeholder responses = INCORRECT.
3. If the student does not demonstrate understanding of the key concepts = INCORRECT.
4. Only mark CORRECT if the student shows genuine understanding. Different wording with the same meaning is CORRECT.

Report how certain you are about your verdict as a confidence between 0.0 and 1.0,
brief feedback explaining the evaluation, and suggestions for improvement when the
answer is incorrect.`

// buildUserMessage formats one evaluation request.
func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", in.Question)
	fmt.Fprintf(&b, "Expected Answer: %s\n", in.ExpectedAnswer)
	fmt.Fprintf(&b, "Student's Answer: %q\n", in.UserAnswer)
	if in.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", in.Context)
	}

	return b.String()
}
