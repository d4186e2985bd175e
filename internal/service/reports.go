package service

import (
	"context"

	"github.com/LeonSoftLab/SupportAPI/internal/db"
	"github.com/LeonSoftLab/SupportAPI/internal/model"
)

type ReportRepo interface {
	GetReports(ctx context.Context) ([]model.Report, error)
	GetReportsByCodeName(ctx context.Context, codeName string) ([]model.Report, error)
	GetReportByID(ctx context.Context, id int) (*model.Report, error)
	CreateReport(ctx context.Context, r *model.Report) (*model.Report, error)
	UpdateReport(ctx context.Context, r *model.Report) (*model.Report, error)
	DeleteReport(ctx context.Context, id int) error
}

type ReportService struct {
	repo ReportRepo
}

func NewReportService(repo ReportRepo) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) List(ctx context.Context, codeName string) ([]model.Report, error) {
	if codeName != "" {
		return s.repo.GetReportsByCodeName(ctx, codeName)
	}
	return s.repo.GetReports(ctx)
}

func (s *ReportService) Create(ctx context.Context, req model.ReportCreateRequest) (*model.Report, error) {
	return s.repo.CreateReport(ctx, &model.Report{
		Name:        req.Name,
		Description: req.Description,
		CodeName:    req.CodeName,
		FileName:    req.FileName,
	})
}

func (s *ReportService) Update(ctx context.Context, id int, req model.ReportUpdateRequest) (*model.Report, error) {
	report, err := s.repo.GetReportByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		report.Name = *req.Name
	}
	if req.Description != nil {
		report.Description = *req.Description
	}
	if req.CodeName != nil {
		report.CodeName = *req.CodeName
	}
	if req.FileName != nil {
		report.FileName = *req.FileName
	}

	return s.repo.UpdateReport(ctx, report)
}

func (s *ReportService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteReport(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
