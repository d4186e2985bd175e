package service

import (
	"context"
	"strings"

	"github.com/LeonSoftLab/SupportAPI/internal/db"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

type GroupService struct {
	repo *db.Postgres
}

func NewGroupService(repo *db.Postgres) *GroupService {
	return &GroupService{repo: repo}
}

func (s *GroupService) List(ctx context.Context, codeName string) ([]model.Group, error) {
	if codeName != "" {
		return s.repo.GetGroupsByCodeName(ctx, codeName)
	}
	return s.repo.GetGroups(ctx)
}

func (s *GroupService) Create(ctx context.Context, req model.GroupCreateRequest) (*model.Group, error) {
	return s.repo.CreateGroup(ctx, &model.Group{
		Name:        req.Name,
		Description: req.Description,
		CodeName:    req.CodeName,
	})
}

func (s *GroupService) Update(ctx context.Context, id int, req model.GroupUpdateRequest) (*model.Group, error) {
	group, err := s.repo.GetGroupByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.CodeName != nil {
		group.CodeName = *req.CodeName
	}

	return s.repo.UpdateGroup(ctx, group)
}

func (s *GroupService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteGroup(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *GroupService) RowsByGroup(ctx context.Context, groupID int) ([]model.GroupRow, error) {
	return s.repo.GetGroupRowsByGroup(ctx, groupID)
}

// RowsByCodeName resolves a combined "<group>_<command>" code name, the way
// bot shortcuts are stored.
func (s *GroupService) RowsByCodeName(ctx context.Context, codeName string) ([]model.GroupRow, error) {
	groupCode, commandText, err := splitCodeName(codeName)
	if err != nil {
		return nil, err
	}
	return s.repo.GetGroupRowsByCodeNames(ctx, groupCode, commandText)
}

// splitCodeName cuts on the first underscore only: group codes never contain
// one, command texts may.
func splitCodeName(codeName string) (string, string, error) {
	parts := strings.SplitN(codeName, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidInput
	}
	return parts[0], parts[1], nil
}

func (s *GroupService) CreateRow(ctx context.Context, req model.GroupRowCreateRequest) (*model.GroupRow, error) {
	if _, err := s.repo.GetGroupByID(ctx, req.GroupID); err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.CreateGroupRow(ctx, &model.GroupRow{
		GroupID:     req.GroupID,
		Name:        req.Name,
		CommandText: req.CommandText,
		FileName:    req.FileName,
	})
}
