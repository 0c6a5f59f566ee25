// internal/courses/service.go

package courses

import (
	"context"
	"errors"
)

var ErrCourseNotFound = errors.New("course not found")

type Service interface {
	CreateCourse(ctx context.Context, req *CreateCourseRequest) (*Course, error)
	GetCourse(ctx context.Context, id int64) (*Course, error)
	UpdateCourse(ctx context.Context, id int64, req *UpdateCourseRequest) (*Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	ListCourses(ctx context.Context, params *ListParams) (*ListResponse, error)
	FindCandidates(ctx context.Context, limit int) ([]*Course, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCourse(ctx context.Context, req *CreateCourseRequest) (*Course, error) {
	course := &Course{
		Name:            req.Name,
		Category:        req.Category,
		Subjects:        req.Subjects,
		FeesMin:         req.FeesMin,
		FeesMax:         req.FeesMax,
		CareerProspects: req.CareerProspects,
		CollegeIDs:      req.CollegeIDs,
	}

	if course.Subjects == nil {
		course.Subjects = []string{}
	}
	if course.CareerProspects == nil {
		course.CareerProspects = []string{}
	}
	if course.CollegeIDs == nil {
		course.CollegeIDs = []int64{}
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *service) GetCourse(ctx context.Context, id int64) (*Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateCourse(ctx context.Context, id int64, req *UpdateCourseRequest) (*Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Subjects != nil {
		course.Subjects = req.Subjects
	}
	if req.FeesMin != nil {
		course.FeesMin = *req.FeesMin
	}
	if req.FeesMax != nil {
		course.FeesMax = *req.FeesMax
	}
	if req.CareerProspects != nil {
		course.CareerProspects = req.CareerProspects
	}
	if req.CollegeIDs != nil {
		course.CollegeIDs = req.CollegeIDs
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *service) DeleteCourse(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListCourses(ctx context.Context, params *ListParams) (*ListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	courses, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	if courses == nil {
		courses = []*Course{}
	}

	return &ListResponse{
		Courses: courses,
		Total:   total,
		Page:    params.Page,
		Limit:   params.Limit,
	}, nil
}

func (s *service) FindCandidates(ctx context.Context, limit int) ([]*Course, error) {
	return s.repo.FindCandidates(ctx, limit)
}
