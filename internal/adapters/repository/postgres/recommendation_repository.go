package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/analysis"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	pgdb "github.com/ogurasousui/codex-grpc-talent/internal/platform/db/postgres"
)

const recommendationColumns = `id, employee_id, target_role_id, target_role_title, skill_gaps, learning_path, timeline_months, confidence, match, status, created_at, updated_at`

// RecommendationRepository は PostgreSQL を利用したレコメンデーション永続化の実装です。
type RecommendationRepository struct {
	pool pgdb.Queryer
}

var _ recommendation.Repository = (*RecommendationRepository)(nil)

// NewRecommendationRepository は RecommendationRepository を生成します。
func NewRecommendationRepository(pool pgdb.Queryer) *RecommendationRepository {
	return &RecommendationRepository{pool: pool}
}

type recommendationDocuments struct {
	gaps  []byte
	path  []byte
	match []byte
}

func encodeRecommendationDocuments(rec *recommendation.Recommendation) (recommendationDocuments, error) {
	var (
		docs recommendationDocuments
		err  error
	)
	if docs.gaps, err = encodeJSON("skill_gaps", rec.SkillGaps); err != nil {
		return docs, err
	}
	if docs.path, err = encodeJSON("learning_path", rec.LearningPath); err != nil {
		return docs, err
	}
	if docs.match, err = encodeJSON("match", rec.Match); err != nil {
		return docs, err
	}
	return docs, nil
}

// Create はレコメンデーションを保存します。社員とロールの組み合わせは一意です。
func (r *RecommendationRepository) Create(ctx context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	docs, err := encodeRecommendationDocuments(rec)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO recommendations (employee_id, target_role_id, target_role_title, skill_gaps, learning_path, timeline_months, confidence, match, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+recommendationColumns+`
    `,
		rec.EmployeeID,
		rec.TargetRoleID,
		rec.TargetRoleTitle,
		docs.gaps,
		docs.path,
		rec.TimelineMonths,
		rec.Confidence,
		docs.match,
		string(rec.Status),
		rec.CreatedAt,
		rec.UpdatedAt,
	)

	created, err := scanRecommendation(row)
	if err != nil {
		return nil, translateRecommendationPgError(err)
	}
	return created, nil
}

// Update はレコメンデーションを更新します。
func (r *RecommendationRepository) Update(ctx context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	docs, err := encodeRecommendationDocuments(rec)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE recommendations
           SET target_role_title = $1,
               skill_gaps = $2,
               learning_path = $3,
               timeline_months = $4,
               confidence = $5,
               match = $6,
               status = $7,
               updated_at = $8
         WHERE id = $9
        RETURNING `+recommendationColumns+`
    `,
		rec.TargetRoleTitle,
		docs.gaps,
		docs.path,
		rec.TimelineMonths,
		rec.Confidence,
		docs.match,
		string(rec.Status),
		rec.UpdatedAt,
		rec.ID,
	)

	updated, err := scanRecommendation(row)
	if err != nil {
		return nil, translateRecommendationPgError(err)
	}
	return updated, nil
}

// Delete はレコメンデーションを削除します。
func (r *RecommendationRepository) Delete(ctx context.Context, id string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM recommendations WHERE id = $1`, id)
	if err != nil {
		return translateRecommendationPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return recommendation.ErrRecommendationNotFound
	}
	return nil
}

// FindByID は ID でレコメンデーションを取得します。
func (r *RecommendationRepository) FindByID(ctx context.Context, id string) (*recommendation.Recommendation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+recommendationColumns+`
          FROM recommendations
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanRecommendation(row)
	if err != nil {
		return nil, translateRecommendationPgError(err)
	}
	return found, nil
}

// FindByEmployeeAndRole は社員と目標ロールの組み合わせで取得します。
func (r *RecommendationRepository) FindByEmployeeAndRole(ctx context.Context, employeeID, roleID string) (*recommendation.Recommendation, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+recommendationColumns+`
          FROM recommendations
         WHERE employee_id = $1 AND target_role_id = $2
         LIMIT 1
    `, employeeID, roleID)

	found, err := scanRecommendation(row)
	if err != nil {
		return nil, translateRecommendationPgError(err)
	}
	return found, nil
}

// List はレコメンデーションの一覧を取得します。
func (r *RecommendationRepository) List(ctx context.Context, filter recommendation.ListRecommendationsFilter) ([]*recommendation.Recommendation, string, error) {
	if filter.Limit <= 0 {
		return nil, "", recommendation.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", recommendation.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 2)
	if id := strings.TrimSpace(filter.EmployeeID); id != "" {
		args = append(args, id)
		conditions = append(conditions, "employee_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
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
        SELECT ` + recommendationColumns + `
          FROM recommendations` + whereClause + `
         ORDER BY created_at ASC, id ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateRecommendationPgError(err)
	}
	defer rows.Close()

	recs := make([]*recommendation.Recommendation, 0, filter.Limit)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, "", translateRecommendationPgError(err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translateRecommendationPgError(err)
	}

	var nextToken string
	if len(recs) == limitWithBuffer {
		recs = recs[:filter.Limit]
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
	}

	return recs, nextToken, nil
}

func scanRecommendation(row pgx.Row) (*recommendation.Recommendation, error) {
	var (
		rec                  recommendation.Recommendation
		gapsRaw              []byte
		pathRaw              []byte
		matchRaw             []byte
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.TargetRoleID,
		&rec.TargetRoleTitle,
		&gapsRaw,
		&pathRaw,
		&rec.TimelineMonths,
		&rec.Confidence,
		&matchRaw,
		&status,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recommendation.ErrRecommendationNotFound
		}
		return nil, err
	}

	gaps := map[string]analysis.Gap{}
	if err := decodeJSON("skill_gaps", gapsRaw, &gaps); err != nil {
		return nil, err
	}
	var path []recommendation.LearningItem
	if err := decodeJSON("learning_path", pathRaw, &path); err != nil {
		return nil, err
	}
	if err := decodeJSON("match", matchRaw, &rec.Match); err != nil {
		return nil, err
	}

	rec.SkillGaps = gaps
	rec.LearningPath = path
	rec.Status = recommendation.Status(status)
	rec.CreatedAt = createdAt.UTC()
	rec.UpdatedAt = updatedAt.UTC()
	return &rec, nil
}

func translateRecommendationPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return recommendation.ErrAlreadyExists
		case foreignKeyViolationCode:
			if strings.Contains(pgErr.ConstraintName, "employee") {
				return user.ErrUserNotFound
			}
			return role.ErrRoleNotFound
		}
	}
	return err
}
