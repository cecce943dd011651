// Package devotional orchestrates daily content generation: prompt assembly,
// a single Gemini call, and response parsing with static fallback.
package devotional

import (
	"context"
	"time"

	"github.com/daily-grace-api/internal/gemini"
	"github.com/daily-grace-api/internal/logger"
	"github.com/daily-grace-api/internal/models"
	"github.com/daily-grace-api/internal/prompt"
)

// Service runs the generation pipeline.
type Service struct {
	generator gemini.Generator
	log       logger.Logger
}

// NewService creates a new devotional service.
func NewService(generator gemini.Generator, log logger.Logger) *Service {
	return &Service{
		generator: generator,
		log:       log,
	}
}

// Daily generates the devotional bundle for the given preferences. Exactly
// one outbound call is made per invocation. Generator failures and malformed
// responses are logged and converted to the static fallback record, so the
// returned Result is always fully populated.
func (s *Service) Daily(ctx context.Context, prefs models.Preferences) Result {
	now := time.Now()

	p := prompt.Build(now, prefs)

	raw, err := s.generator.Generate(ctx, p)
	if err != nil {
		s.log.Warn("content generation failed, serving fallback",
			logger.Error(err))
		return Fallback(now, ReasonAPIError)
	}

	result := Parse(raw, now)
	if result.Source == SourceFallback {
		s.log.Warn("model response unusable, serving fallback",
			logger.String("reason", string(result.Reason)),
			logger.Int("response_length", len(raw)))
	}
	return result
}
