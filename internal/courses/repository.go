// internal/courses/repository.go

package courses

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id int64) (*Course, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params *ListParams) ([]*Course, int, error)

	// FindCandidates returns a bounded candidate pool for scoring
	FindCandidates(ctx context.Context, limit int) ([]*Course, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, course *Course) error {
	query := `
        INSERT INTO courses (
            name, category, subjects, fees_min, fees_max,
            career_prospects, college_ids
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		course.Name, course.Category, course.Subjects, course.FeesMin,
		course.FeesMax, course.CareerProspects, course.CollegeIDs,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*Course, error) {
	var course Course
	query := `SELECT * FROM courses WHERE id = $1`

	err := r.db.GetContext(ctx, &course, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &course, nil
}

func (r *postgresRepository) Update(ctx context.Context, course *Course) error {
	query := `
        UPDATE courses
        SET name = $2, category = $3, subjects = $4, fees_min = $5,
            fees_max = $6, career_prospects = $7, college_ids = $8,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		course.ID, course.Name, course.Category, course.Subjects,
		course.FeesMin, course.FeesMax, course.CareerProspects,
		course.CollegeIDs,
	).Scan(&course.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrCourseNotFound
	}

	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, params *ListParams) ([]*Course, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, params.Category)
		argIdx++
	}
	if params.MaxFee > 0 {
		conditions = append(conditions, fmt.Sprintf("fees_max <= $%d", argIdx))
		args = append(args, params.MaxFee)
		argIdx++
	}
	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+params.Search+"%")
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM courses" + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM courses%s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	var courses []*Course
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}

	return courses, total, nil
}

func (r *postgresRepository) FindCandidates(ctx context.Context, limit int) ([]*Course, error) {
	var courses []*Course
	query := `SELECT * FROM courses ORDER BY id ASC LIMIT $1`

	if err := r.db.SelectContext(ctx, &courses, query, limit); err != nil {
		return nil, fmt.Errorf("failed to find course candidates: %w", err)
	}

	return courses, nil
}
