package services

import (
	"context"

	"github.com/sbilibin2017/gw-text2sql/internal/logger"
	"github.com/sbilibin2017/gw-text2sql/internal/models"
)

// StudentStore persists STUDENT rows.
type StudentStore interface {
	EnsureTable(ctx context.Context) error
	SaveAll(ctx context.Context, students []models.Student) error
	List(ctx context.Context) ([][]any, error)
}

// StudentService backs the console insertion tool.
type StudentService struct {
	store StudentStore
}

func NewStudentService(store StudentStore) *StudentService {
	return &StudentService{store: store}
}

// Prepare creates the STUDENT table when it is missing.
func (s *StudentService) Prepare(ctx context.Context) error {
	if err := s.store.EnsureTable(ctx); err != nil {
		logger.Log.Errorw("failed to create student table", "error", err)
		return err
	}
	return nil
}

// Insert saves the records and returns every row of the table.
func (s *StudentService) Insert(ctx context.Context, students []models.Student) ([][]any, error) {
	if err := s.store.SaveAll(ctx, students); err != nil {
		logger.Log.Errorw("failed to insert students", "count", len(students), "error", err)
		return nil, err
	}
	return s.store.List(ctx)
}
