package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
)

// InsufficientContextSentinel is the phrase the model is instructed to reply
// with when the retrieved context does not contain the answer. It is
// returned verbatim when the model chooses to use it.
const InsufficientContextSentinel = "I don't have information about this topic. Please ask a more specific question."

// AnswerGenerator turns retrieved context plus a question into a grounded
// answer. Whatever the model returns is the answer - no post-processing.
type AnswerGenerator struct {
	generator ports.GenerationService
}

// NewAnswerGenerator creates an AnswerGenerator with the given generation capability.
func NewAnswerGenerator(generator ports.GenerationService) *AnswerGenerator {
	return &AnswerGenerator{generator: generator}
}

// Generate invokes the generation capability with the RAG prompt.
// An empty context is valid; the prompt instructs the model to fall back
// to the sentinel phrase when the context is insufficient.
func (g *AnswerGenerator) Generate(ctx context.Context, contextBlock, question string) (string, error) {
	answer, err := g.generator.Complete(ctx, g.buildPrompt(contextBlock, question))
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return answer, nil
}

// buildPrompt creates the grounded-answer prompt.
func (g *AnswerGenerator) buildPrompt(contextBlock, question string) string {
	var sb strings.Builder
	sb.WriteString("Answer the user's question using only the context below.\n")
	sb.WriteString(`If the context does not contain the answer, reply with "`)
	sb.WriteString(InsufficientContextSentinel)
	sb.WriteString("\".\n")
	sb.WriteString("Keep your answer as natural and helpful as possible.\n\n")
	sb.WriteString("Context:\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")
	return sb.String()
}
