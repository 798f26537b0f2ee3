package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/metrics"
)

// Completer sends a prompt to a language model.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TranslatorService turns a composed prompt into a SQL string.
type TranslatorService struct {
	completer Completer
}

// NewTranslatorService creates a TranslatorService.
func NewTranslatorService(completer Completer) *TranslatorService {
	return &TranslatorService{completer: completer}
}

// Translate makes a single completion call and strips incidental formatting.
// The output is not checked for validity or safety here.
func (s *TranslatorService) Translate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	raw, err := s.completer.Complete(ctx, prompt)
	metrics.ObserveTranslation(metrics.Outcome(err), time.Since(start))
	if err != nil {
		logger.Log.Errorw("translation failed", "error", err)
		return "", err
	}

	sql := CleanSQL(raw)
	logger.Log.Infow("translated question", "sql", sql)
	return sql, nil
}

// CleanSQL trims whitespace and removes a surrounding fenced code block,
// including a language tag on the opening fence.
func CleanSQL(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 && isFenceTag(s[:i]) {
			s = s[i+1:]
		} else if len(s) > 3 && strings.EqualFold(s[:3], "sql") && unicode.IsSpace(rune(s[3])) {
			s = s[3:]
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

var fenceTags = map[string]struct{}{
	"":           {},
	"sql":        {},
	"sqlite":     {},
	"sqlite3":    {},
	"postgres":   {},
	"postgresql": {},
	"psql":       {},
	"pgsql":      {},
	"plsql":      {},
	"mysql":      {},
}

// isFenceTag reports whether the opening fence line names a SQL dialect.
// Any other text on that line is part of the statement.
func isFenceTag(s string) bool {
	_, ok := fenceTags[strings.ToLower(strings.TrimSpace(s))]
	return ok
}
