package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
	"github.com/sbilibin2017/gw-text2sql/internal/repositories"
)

// SchemaReader lists tables and columns of the target database.
type SchemaReader interface {
	ListTables(ctx context.Context) ([]models.TableInfo, error)
}

// SchemaCache stores the rendered description between requests.
type SchemaCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, description string) error
	Invalidate(ctx context.Context) error
}

// SchemaService renders the database catalog as prompt context.
type SchemaService struct {
	reader SchemaReader
	cache  SchemaCache
}

// NewSchemaService creates a SchemaService. A nil cache means every call
// scans the catalog.
func NewSchemaService(reader SchemaReader, cache SchemaCache) *SchemaService {
	return &SchemaService{reader: reader, cache: cache}
}

// Describe returns the schema description, from the cache when possible.
func (s *SchemaService) Describe(ctx context.Context) (string, error) {
	if s.cache != nil {
		desc, err := s.cache.Get(ctx)
		if err == nil {
			return desc, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("schema cache unavailable, reading catalog", "error", err)
		}
	}

	tables, err := s.reader.ListTables(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tables", "error", err)
		return "", err
	}
	desc := FormatSchema(tables)

	if s.cache != nil {
		if err := s.cache.Set(ctx, desc); err != nil {
			logger.Log.Warnw("failed to cache schema description", "error", err)
		}
	}

	return desc, nil
}

// Tables returns the structured catalog listing. It is never cached.
func (s *SchemaService) Tables(ctx context.Context) ([]models.TableInfo, error) {
	tables, err := s.reader.ListTables(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tables", "error", err)
		return nil, err
	}
	return tables, nil
}

// Invalidate drops the cached description.
func (s *SchemaService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate schema cache", "error", err)
		return err
	}
	return nil
}

// FormatSchema renders tables as text blocks separated by a blank line.
func FormatSchema(tables []models.TableInfo) string {
	var b strings.Builder
	for _, t := range tables {
		fmt.Fprintf(&b, "Table: %s\n", t.Name)
		for _, c := range t.Columns {
			fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.Type)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
