// internal/colleges/repository.go

package colleges

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, college *College) error
	GetByID(ctx context.Context, id int64) (*College, error)
	Update(ctx context.Context, college *College) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params *ListParams) ([]*College, int, error)

	// FindCandidates returns a bounded candidate pool for scoring.
	// Filters that are empty/zero are skipped.
	FindCandidates(ctx context.Context, filter *CandidateFilter) ([]*College, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, college *College) error {
	query := `
        INSERT INTO colleges (
            name, type, category, state, city, programs, facilities,
            rating_overall, placement
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		college.Name, college.Type, college.Category, college.State,
		college.City, college.Programs, college.Facilities,
		college.RatingOverall, college.Placement,
	).Scan(&college.ID, &college.CreatedAt, &college.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create college: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*College, error) {
	var college College
	query := `SELECT * FROM colleges WHERE id = $1`

	err := r.db.GetContext(ctx, &college, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCollegeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get college: %w", err)
	}

	return &college, nil
}

func (r *postgresRepository) Update(ctx context.Context, college *College) error {
	query := `
        UPDATE colleges
        SET name = $2, type = $3, category = $4, state = $5, city = $6,
            programs = $7, facilities = $8, rating_overall = $9,
            placement = $10, updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.db.QueryRowxContext(
		ctx, query,
		college.ID, college.Name, college.Type, college.Category,
		college.State, college.City, college.Programs, college.Facilities,
		college.RatingOverall, college.Placement,
	).Scan(&college.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrCollegeNotFound
	}

	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCollegeNotFound
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, params *ListParams) ([]*College, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if params.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", argIdx))
		args = append(args, params.State)
		argIdx++
	}
	if params.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", argIdx))
		args = append(args, params.City)
		argIdx++
	}
	if params.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, params.Type)
		argIdx++
	}
	if params.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, params.Category)
		argIdx++
	}
	if params.MaxFee > 0 {
		// Mean annual fee across a college's programs
		conditions = append(conditions, fmt.Sprintf(`(
            SELECT COALESCE(AVG((p->>'annual_fee')::numeric), 0)
            FROM jsonb_array_elements(programs) p
        ) <= $%d`, argIdx))
		args = append(args, params.MaxFee)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM colleges" + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count colleges: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT * FROM colleges%s ORDER BY rating_overall DESC, name ASC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	var colleges []*College
	if err := r.db.SelectContext(ctx, &colleges, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list colleges: %w", err)
	}

	return colleges, total, nil
}

func (r *postgresRepository) FindCandidates(ctx context.Context, filter *CandidateFilter) ([]*College, error) {
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if len(filter.States) > 0 {
		conditions = append(conditions, fmt.Sprintf("state = ANY($%d)", argIdx))
		args = append(args, pq.Array(filter.States))
		argIdx++
	}
	if len(filter.Types) > 0 {
		conditions = append(conditions, fmt.Sprintf("type = ANY($%d)", argIdx))
		args = append(args, pq.Array(filter.Types))
		argIdx++
	}
	if filter.MaxBudget > 0 {
		conditions = append(conditions, fmt.Sprintf(`(
            SELECT COALESCE(AVG((p->>'annual_fee')::numeric), 0)
            FROM jsonb_array_elements(programs) p
        ) <= $%d`, argIdx))
		args = append(args, filter.MaxBudget)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT * FROM colleges%s ORDER BY id ASC LIMIT $%d", where, argIdx)
	args = append(args, filter.Limit)

	var colleges []*College
	if err := r.db.SelectContext(ctx, &colleges, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find college candidates: %w", err)
	}

	return colleges, nil
}
