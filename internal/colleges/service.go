// internal/colleges/service.go

package colleges

import (
	"context"
	"errors"
)

var ErrCollegeNotFound = errors.New("college not found")

type Service interface {
	CreateCollege(ctx context.Context, req *CreateCollegeRequest) (*College, error)
	GetCollege(ctx context.Context, id int64) (*College, error)
	UpdateCollege(ctx context.Context, id int64, req *UpdateCollegeRequest) (*College, error)
	DeleteCollege(ctx context.Context, id int64) error
	ListColleges(ctx context.Context, params *ListParams) (*ListResponse, error)
	FindCandidates(ctx context.Context, filter *CandidateFilter) ([]*College, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCollege(ctx context.Context, req *CreateCollegeRequest) (*College, error) {
	college := &College{
		Name:          req.Name,
		Type:          req.Type,
		Category:      req.Category,
		State:         req.State,
		City:          req.City,
		Programs:      req.Programs,
		Facilities:    req.Facilities,
		RatingOverall: req.RatingOverall,
		Placement:     req.Placement,
	}

	if college.Programs == nil {
		college.Programs = ProgramList{}
	}
	if college.Facilities == nil {
		college.Facilities = []string{}
	}

	if err := s.repo.Create(ctx, college); err != nil {
		return nil, err
	}

	return college, nil
}

func (s *service) GetCollege(ctx context.Context, id int64) (*College, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateCollege(ctx context.Context, id int64, req *UpdateCollegeRequest) (*College, error) {
	college, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		college.Name = *req.Name
	}
	if req.Type != nil {
		college.Type = *req.Type
	}
	if req.Category != nil {
		college.Category = *req.Category
	}
	if req.State != nil {
		college.State = *req.State
	}
	if req.City != nil {
		college.City = *req.City
	}
	if req.Programs != nil {
		college.Programs = req.Programs
	}
	if req.Facilities != nil {
		college.Facilities = req.Facilities
	}
	if req.RatingOverall != nil {
		college.RatingOverall = *req.RatingOverall
	}
	if req.Placement != nil {
		college.Placement = *req.Placement
	}

	if err := s.repo.Update(ctx, college); err != nil {
		return nil, err
	}

	return college, nil
}

func (s *service) DeleteCollege(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListColleges(ctx context.Context, params *ListParams) (*ListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	colleges, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	if colleges == nil {
		colleges = []*College{}
	}

	return &ListResponse{
		Colleges: colleges,
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	}, nil
}

func (s *service) FindCandidates(ctx context.Context, filter *CandidateFilter) ([]*College, error) {
	return s.repo.FindCandidates(ctx, filter)
}
