package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	pgdb "github.com/ogurasousui/codex-grpc-talent/internal/platform/db/postgres"
)

const roleColumns = `id, title, department, required_skills, experience_years, education, created_at, updated_at`

// RoleRepository は PostgreSQL を利用したロール永続化の実装です。
type RoleRepository struct {
	pool pgdb.Queryer
}

var _ role.Repository = (*RoleRepository)(nil)

// NewRoleRepository は RoleRepository を生成します。
func NewRoleRepository(pool pgdb.Queryer) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// Create はロールを新規作成します。
func (r *RoleRepository) Create(ctx context.Context, ro *role.Role) (*role.Role, error) {
	required, education, err := encodeRoleDocuments(ro)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO roles (title, department, required_skills, experience_years, education, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+roleColumns+`
    `, ro.Title, ro.Department, required, ro.ExperienceYears, education, ro.CreatedAt, ro.UpdatedAt)

	created, err := scanRole(row)
	if err != nil {
		return nil, translateRolePgError(err)
	}
	return created, nil
}

// Update はロールを更新します。
func (r *RoleRepository) Update(ctx context.Context, ro *role.Role) (*role.Role, error) {
	required, education, err := encodeRoleDocuments(ro)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE roles
           SET title = $1,
               department = $2,
               required_skills = $3,
               experience_years = $4,
               education = $5,
               updated_at = $6
         WHERE id = $7
        RETURNING `+roleColumns+`
    `, ro.Title, ro.Department, required, ro.ExperienceYears, education, ro.UpdatedAt, ro.ID)

	updated, err := scanRole(row)
	if err != nil {
		return nil, translateRolePgError(err)
	}
	return updated, nil
}

// Delete はロールを削除します。
func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return translateRolePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// FindByID は ID でロールを取得します。
func (r *RoleRepository) FindByID(ctx context.Context, id string) (*role.Role, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+roleColumns+`
          FROM roles
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanRole(row)
	if err != nil {
		return nil, translateRolePgError(err)
	}
	return found, nil
}

// FindByTitle は大文字小文字を区別せずにロール名で検索します。
func (r *RoleRepository) FindByTitle(ctx context.Context, title string) (*role.Role, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+roleColumns+`
          FROM roles
         WHERE lower(title) = lower($1)
         LIMIT 1
    `, strings.TrimSpace(title))

	found, err := scanRole(row)
	if err != nil {
		return nil, translateRolePgError(err)
	}
	return found, nil
}

// List はロールの一覧を取得します。
func (r *RoleRepository) List(ctx context.Context, filter role.ListRolesFilter) ([]*role.Role, string, error) {
	if filter.Limit <= 0 {
		return nil, "", role.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", role.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 3)
	whereClause := ""
	if dept := strings.TrimSpace(filter.Department); dept != "" {
		args = append(args, dept)
		whereClause = " WHERE lower(department) = lower($" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, limitWithBuffer)
	limitPlaceholder := "$" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetPlaceholder := "$" + strconv.Itoa(len(args))

	query := `
        SELECT ` + roleColumns + `
          FROM roles` + whereClause + `
         ORDER BY created_at ASC, id ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateRolePgError(err)
	}
	defer rows.Close()

	roles := make([]*role.Role, 0, filter.Limit)
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, "", translateRolePgError(err)
		}
		roles = append(roles, ro)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translateRolePgError(err)
	}

	var nextToken string
	if len(roles) == limitWithBuffer {
		roles = roles[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return roles, nextToken, nil
}

func encodeRoleDocuments(ro *role.Role) (required, education []byte, err error) {
	if required, err = encodeJSON("required_skills", ro.RequiredSkills); err != nil {
		return nil, nil, err
	}
	if education, err = encodeJSON("education", ro.Education); err != nil {
		return nil, nil, err
	}
	return required, education, nil
}

func scanRole(row pgx.Row) (*role.Role, error) {
	var (
		ro                   role.Role
		requiredRaw          []byte
		educationRaw         []byte
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&ro.ID,
		&ro.Title,
		&ro.Department,
		&requiredRaw,
		&ro.ExperienceYears,
		&educationRaw,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, role.ErrRoleNotFound
		}
		return nil, err
	}

	required := map[string]skill.Requirement{}
	if err := decodeJSON("required_skills", requiredRaw, &required); err != nil {
		return nil, err
	}
	var education []string
	if err := decodeJSON("education", educationRaw, &education); err != nil {
		return nil, err
	}

	ro.RequiredSkills = required
	ro.Education = education
	ro.CreatedAt = createdAt.UTC()
	ro.UpdatedAt = updatedAt.UTC()
	return &ro, nil
}

func translateRolePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolationCode {
			return role.ErrTitleAlreadyExists
		}
	}
	return err
}
