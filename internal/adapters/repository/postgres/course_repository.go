package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	pgdb "github.com/ogurasousui/codex-grpc-talent/internal/platform/db/postgres"
)

const courseColumns = `id, title, skill, provider, level, duration_weeks, description, created_at, updated_at`

// CourseRepository は PostgreSQL を利用したコース永続化の実装です。
type CourseRepository struct {
	pool pgdb.Queryer
}

var _ course.Repository = (*CourseRepository)(nil)

// NewCourseRepository は CourseRepository を生成します。
func NewCourseRepository(pool pgdb.Queryer) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create はコースを登録します。
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) (*course.Course, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO courses (title, skill, provider, level, duration_weeks, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+courseColumns+`
    `, c.Title, c.Skill, c.Provider, c.Level, c.DurationWeeks, c.Description, c.CreatedAt, c.UpdatedAt)

	return scanCourse(row)
}

// Delete はコースを削除します。
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return course.ErrCourseNotFound
	}
	return nil
}

// FindByID は ID でコースを取得します。
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*course.Course, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+courseColumns+`
          FROM courses
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanCourse(row)
}

// List はコースの一覧を取得します。Skill は大文字小文字を区別しません。
func (r *CourseRepository) List(ctx context.Context, filter course.ListCoursesFilter) ([]*course.Course, string, error) {
	if filter.Limit <= 0 {
		return nil, "", course.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", course.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 3)
	whereClause := ""
	if s := strings.TrimSpace(filter.Skill); s != "" {
		args = append(args, s)
		whereClause = " WHERE lower(skill) = lower($" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, limitWithBuffer)
	limitPlaceholder := "$" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetPlaceholder := "$" + strconv.Itoa(len(args))

	query := `
        SELECT ` + courseColumns + `
          FROM courses` + whereClause + `
         ORDER BY created_at ASC, id ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	courses := make([]*course.Course, 0, filter.Limit)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, "", err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var nextToken string
	if len(courses) == limitWithBuffer {
		courses = courses[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return courses, nextToken, nil
}

func scanCourse(row pgx.Row) (*course.Course, error) {
	var (
		c                    course.Course
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Skill,
		&c.Provider,
		&c.Level,
		&c.DurationWeeks,
		&c.Description,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, err
	}

	c.CreatedAt = createdAt.UTC()
	c.UpdatedAt = updatedAt.UTC()
	return &c, nil
}
