// internal/careers/service.go

package careers

import (
	"context"
	"errors"
)

var ErrCareerNotFound = errors.New("career not found")

type Service interface {
	CreateCareer(ctx context.Context, req *CreateCareerRequest) (*Career, error)
	GetCareer(ctx context.Context, id int64) (*Career, error)
	UpdateCareer(ctx context.Context, id int64, req *UpdateCareerRequest) (*Career, error)
	DeleteCareer(ctx context.Context, id int64) error
	ListCareers(ctx context.Context, params *ListParams) (*ListResponse, error)
	FindCandidates(ctx context.Context, limit int) ([]*Career, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCareer(ctx context.Context, req *CreateCareerRequest) (*Career, error) {
	career := &Career{
		Name:        req.Name,
		Description: req.Description,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		GrowthRate:  req.GrowthRate,
		Demand:      req.Demand,
		Skills:      req.Skills,
		Industries:  req.Industries,
		JobRoles:    req.JobRoles,
		Courses:     req.Courses,
		Requirement: req.Requirement,
	}

	if career.Skills == nil {
		career.Skills = []string{}
	}
	if career.Industries == nil {
		career.Industries = []string{}
	}
	if career.JobRoles == nil {
		career.JobRoles = []string{}
	}
	if career.Courses == nil {
		career.Courses = []string{}
	}

	if err := s.repo.Create(ctx, career); err != nil {
		return nil, err
	}

	return career, nil
}

func (s *service) GetCareer(ctx context.Context, id int64) (*Career, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateCareer(ctx context.Context, id int64, req *UpdateCareerRequest) (*Career, error) {
	career, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		career.Name = *req.Name
	}
	if req.Description != nil {
		career.Description = *req.Description
	}
	if req.SalaryMin != nil {
		career.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		career.SalaryMax = *req.SalaryMax
	}
	if req.GrowthRate != nil {
		career.GrowthRate = *req.GrowthRate
	}
	if req.Demand != nil {
		career.Demand = *req.Demand
	}
	if req.Skills != nil {
		career.Skills = req.Skills
	}
	if req.Industries != nil {
		career.Industries = req.Industries
	}
	if req.JobRoles != nil {
		career.JobRoles = req.JobRoles
	}
	if req.Courses != nil {
		career.Courses = req.Courses
	}
	if req.Requirement != nil {
		career.Requirement = *req.Requirement
	}

	if err := s.repo.Update(ctx, career); err != nil {
		return nil, err
	}

	return career, nil
}

func (s *service) DeleteCareer(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListCareers(ctx context.Context, params *ListParams) (*ListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	careers, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	if careers == nil {
		careers = []*Career{}
	}

	return &ListResponse{
		Careers: careers,
		Total:   total,
		Page:    params.Page,
		Limit:   params.Limit,
	}, nil
}

func (s *service) FindCandidates(ctx context.Context, limit int) ([]*Career, error) {
	return s.repo.FindCandidates(ctx, limit)
}
