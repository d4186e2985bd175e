package service

import (
	"context"
	"log"
	"time"

	"github.com/LeonSoftLab/SupportAPI/internal/db"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

type LogEventService struct {
	repo *db.Postgres
}

func NewLogEventService(repo *db.Postgres) *LogEventService {
	return &LogEventService{repo: repo}
}

// List returns the caller's own activity log between start and end.
func (s *LogEventService) List(ctx context.Context, employeeID int, start, end time.Time, limit, offset int) ([]model.LogEvent, error) {
	limit, offset = clampPage(limit, offset)
	return s.repo.GetLogEvents(ctx, employeeID, start, end, limit, offset)
}

// Record writes an audit event. Failures are logged and swallowed: auditing
// must never fail the request it describes.
func (s *LogEventService) Record(ctx context.Context, employeeID int, event, status, description string) {
	err := s.repo.InsertLogEvent(ctx, &model.LogEvent{
		EmployeeID:  employeeID,
		Event:       event,
		Status:      status,
		Description: description,
	})
	if err != nil {
		log.Printf("logevent %q not recorded: %v", event, err)
	}
}
