package usecases

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/ports"
)

// ApologyMessage masks any retrieval or generation failure inside the query
// pipeline. The query boundary is failure-opaque: the caller always gets a
// natural-language response.
const ApologyMessage = "Sorry, something went wrong. Please try again."

// QueryUseCase answers an end-user message against the tenant's knowledge
// base: detect language, translate to the English pivot, retrieve and
// generate, translate back.
type QueryUseCase struct {
	caps        Capabilities
	detector    ports.LanguageDetector
	translator  *Translator
	retriever   *Retriever
	generator   *AnswerGenerator
	defaultLang Language
	logger      *zap.Logger
}

// NewQueryUseCase creates a QueryUseCase. The retriever and generator are
// only built when the required capabilities are present; the degraded-mode
// branch short-circuits before they are used otherwise.
func NewQueryUseCase(caps Capabilities, detector ports.LanguageDetector, topK int, defaultLang Language, logger *zap.Logger) *QueryUseCase {
	if defaultLang == "" {
		defaultLang = English
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueryUseCase{
		caps:        caps,
		detector:    detector,
		translator:  NewTranslator(caps.Generator),
		retriever:   NewRetriever(caps.Embedder, caps.Store, topK),
		generator:   NewAnswerGenerator(caps.Generator),
		defaultLang: defaultLang,
		logger:      logger,
	}
}

// Answer runs the query pipeline, strictly sequential, no backtracking.
// It never returns an error: missing capabilities produce the fixed
// degraded-mode message, and any failure inside the pipeline is logged and
// masked with the apology message.
func (uc *QueryUseCase) Answer(ctx context.Context, message, tenantID string) string {
	if missing := uc.caps.MissingForQuery(); len(missing) > 0 {
		uc.logger.Info("query served in degraded mode",
			zap.String("tenant_id", tenantID), zap.Strings("missing", missing))
		return degradedMessage(missing)
	}

	lang := uc.detectLanguage(message)

	question := message
	if lang != English {
		translated, err := uc.translator.Translate(ctx, message, English)
		if err != nil {
			uc.logger.Warn("question translation failed, using original text", zap.Error(err))
		}
		question = translated
	}

	contextBlock, err := uc.retriever.Retrieve(ctx, tenantID, question)
	if err != nil {
		uc.logger.Error("retrieval failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return ApologyMessage
	}

	answer, err := uc.generator.Generate(ctx, contextBlock, question)
	if err != nil {
		uc.logger.Error("generation failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return ApologyMessage
	}

	if lang != English {
		translated, err := uc.translator.Translate(ctx, answer, lang)
		if err != nil {
			uc.logger.Warn("answer translation failed, using English answer", zap.Error(err))
		}
		answer = translated
	}

	return answer
}

// detectLanguage identifies the message language, falling back to the
// configured default code. Detection is advisory, never fatal.
func (uc *QueryUseCase) detectLanguage(text string) Language {
	if uc.detector == nil {
		return uc.defaultLang
	}
	code, err := uc.detector.Detect(text)
	if err != nil || code == "" {
		uc.logger.Debug("language detection failed, using default",
			zap.String("default", string(uc.defaultLang)), zap.Error(err))
		return uc.defaultLang
	}
	return Language(code)
}

// degradedMessage names the missing configuration instead of failing.
func degradedMessage(missing []string) string {
	return fmt.Sprintf(
		"The assistant is running with limited functionality: %s not configured. Please contact the administrator to enable full answers.",
		strings.Join(missing, ", "))
}
