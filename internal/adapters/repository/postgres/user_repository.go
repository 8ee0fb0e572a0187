package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	pgdb "github.com/ogurasousui/codex-grpc-talent/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

const userColumns = `id, email, name, department, status, skills, performance, potential, experience_years, education, created_at, updated_at`

// UserRepository は PostgreSQL を利用したユーザー永続化の実装です。
type UserRepository struct {
	pool pgdb.Queryer
}

var _ user.Repository = (*UserRepository)(nil)

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(pool pgdb.Queryer) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create はユーザーを新規作成します。
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	skills, education, err := encodeUserDocuments(u)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO users (email, name, department, status, skills, performance, potential, experience_years, education, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+userColumns+`
    `, u.Email, u.Name, u.Department, string(u.Status), skills, u.Performance, u.Potential, u.ExperienceYears, education, u.CreatedAt, u.UpdatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, translateUserPgError(err)
	}
	return created, nil
}

// Update はユーザー情報を更新します。
func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	skills, education, err := encodeUserDocuments(u)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE users
           SET email = $1,
               name = $2,
               department = $3,
               status = $4,
               skills = $5,
               performance = $6,
               potential = $7,
               experience_years = $8,
               education = $9,
               updated_at = $10
         WHERE id = $11
        RETURNING `+userColumns+`
    `, u.Email, u.Name, u.Department, string(u.Status), skills, u.Performance, u.Potential, u.ExperienceYears, education, u.UpdatedAt, u.ID)

	updated, err := scanUser(row)
	if err != nil {
		return nil, translateUserPgError(err)
	}
	return updated, nil
}

// Delete はユーザーを削除します。関連するレコメンデーションはカスケード削除されます。
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateUserPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// FindByID はIDでユーザーを取得します。
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanUser(row)
	if err != nil {
		return nil, translateUserPgError(err)
	}
	return found, nil
}

// FindByEmail はメールアドレスでユーザーを取得します。大文字小文字は区別しません。
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE lower(email) = lower($1)
         LIMIT 1
    `, email)

	found, err := scanUser(row)
	if err != nil {
		return nil, translateUserPgError(err)
	}
	return found, nil
}

// List はユーザーの一覧を作成日時の昇順で取得します。
func (r *UserRepository) List(ctx context.Context, filter user.ListUsersFilter) ([]*user.User, string, error) {
	if filter.Limit <= 0 {
		return nil, "", user.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", user.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 2)

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if dept := strings.TrimSpace(filter.Department); dept != "" {
		args = append(args, dept)
		conditions = append(conditions, "lower(department) = lower($"+strconv.Itoa(len(args))+")")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, limitWithBuffer)
	limitPlaceholder := "$" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetPlaceholder := "$" + strconv.Itoa(len(args))

	query := `
        SELECT ` + userColumns + `
          FROM users` + whereClause + `
         ORDER BY created_at ASC, id ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateUserPgError(err)
	}
	defer rows.Close()

	users := make([]*user.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, "", translateUserPgError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translateUserPgError(err)
	}

	var nextToken string
	if len(users) == limitWithBuffer {
		users = users[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return users, nextToken, nil
}

func encodeUserDocuments(u *user.User) (skills, education []byte, err error) {
	if skills, err = encodeJSON("skills", u.Skills); err != nil {
		return nil, nil, err
	}
	if education, err = encodeJSON("education", u.Education); err != nil {
		return nil, nil, err
	}
	return skills, education, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		u                    user.User
		status               string
		skillsRaw            []byte
		educationRaw         []byte
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Department,
		&status,
		&skillsRaw,
		&u.Performance,
		&u.Potential,
		&u.ExperienceYears,
		&educationRaw,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	skills := map[string]skill.Proficiency{}
	if err := decodeJSON("skills", skillsRaw, &skills); err != nil {
		return nil, err
	}
	var education []string
	if err := decodeJSON("education", educationRaw, &education); err != nil {
		return nil, err
	}

	u.Status = user.Status(status)
	u.Skills = skills
	u.Education = education
	u.CreatedAt = createdAt.UTC()
	u.UpdatedAt = updatedAt.UTC()
	return &u, nil
}

func translateUserPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			return user.ErrEmailAlreadyExists
		}
	}
	return err
}
