package service

import (
	"context"

	"github.com/LeonSoftLab/SupportAPI/internal/db"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type TaskService struct {
	repo *db.Postgres
}

func NewTaskService(repo *db.Postgres) *TaskService {
	return &TaskService{repo: repo}
}

// List returns the caller's own tasks; tasks are scoped by employee id.
func (s *TaskService) List(ctx context.Context, employeeID, limit, offset int) ([]model.Task, error) {
	limit, offset = clampPage(limit, offset)
	return s.repo.GetTasksByEmployee(ctx, employeeID, limit, offset)
}

func (s *TaskService) Get(ctx context.Context, id, employeeID int) (*model.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, id, employeeID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, employeeID int, req model.TaskCreateRequest) (*model.Task, error) {
	return s.repo.CreateTask(ctx, &model.Task{
		EmployeeID:  employeeID,
		LastContext: req.LastContext,
		MessageText: req.MessageText,
	})
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
