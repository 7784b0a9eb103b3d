package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
)

const translationPrompt = "Translate the following text to %s. Only return the translation, nothing else:\n\n%s"

// Translator converts text between languages through the generation
// capability. It is stateless given a configured generator.
type Translator struct {
	generator ports.GenerationService
}

// NewTranslator creates a Translator. A nil generator is valid and makes
// every translation an identity pass-through.
func NewTranslator(generator ports.GenerationService) *Translator {
	return &Translator{generator: generator}
}

// Translate returns text in the target language. The returned string is
// always usable: when no generator is configured the input comes back
// unchanged, and when the generation call fails the input comes back
// unchanged together with the failure reason. Callers log the reason and
// continue; translation failures are never fatal.
func (t *Translator) Translate(ctx context.Context, text string, target Language) (string, error) {
	if t.generator == nil {
		return text, nil
	}

	prompt := fmt.Sprintf(translationPrompt, target.DisplayName(), text)
	out, err := t.generator.Complete(ctx, prompt)
	if err != nil {
		return text, fmt.Errorf("translating to %s: %w", target, err)
	}
	return strings.TrimSpace(out), nil
}
