package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var recommendationColumnNames = []string{"id", "employee_id", "target_role_id", "target_role_title", "skill_gaps", "learning_path", "timeline_months", "confidence", "match", "status", "created_at", "updated_at"}

func TestRecommendationRepository_FindByEmployeeAndRole(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`WHERE employee_id = \$1 AND target_role_id = \$2`).
		WithArgs("user-1", "role-1").
		WillReturnRows(pgxmock.NewRows(recommendationColumnNames).AddRow(
			"rec-1", "user-1", "role-1", "Tech Lead",
			[]byte(`{"JavaScript":{"skill":"JavaScript","currentLevel":2,"requiredLevel":4,"gap":2,"priority":"high","weight":1,"critical":true}}`),
			[]byte(`[{"id":"js-course","type":"course","title":"JavaScript Fundamentals","month":1,"skillImpact":1,"status":"in_progress","progress":40,"courseId":"course-1"}]`),
			4, 0.75,
			[]byte(`{"skillsMatch":50,"experienceMatch":40,"educationMatch":100,"overallMatch":55,"readiness":60}`),
			"accepted", now, now,
		))

	rec, err := NewRecommendationRepository(mock).FindByEmployeeAndRole(context.Background(), "user-1", "role-1")
	if err != nil {
		t.Fatalf("FindByEmployeeAndRole returned error: %v", err)
	}

	if rec.Status != recommendation.StatusAccepted {
		t.Fatalf("expected accepted status, got %s", rec.Status)
	}
	if gap := rec.SkillGaps["JavaScript"]; gap.Gap != 2 || !gap.Critical {
		t.Fatalf("unexpected gaps %+v", rec.SkillGaps)
	}
	if len(rec.LearningPath) != 1 {
		t.Fatalf("expected one learning item, got %d", len(rec.LearningPath))
	}
	item := rec.LearningPath[0]
	if item.ID != "js-course" || item.Progress != 40 || item.Status != recommendation.ItemInProgress || item.CourseID != "course-1" {
		t.Fatalf("unexpected learning item %+v", item)
	}
	if rec.Match.OverallMatch != 55 || rec.TimelineMonths != 4 {
		t.Fatalf("unexpected match or timeline %+v", rec)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecommendationRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM recommendations`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(recommendationColumnNames))

	if _, err := NewRecommendationRepository(mock).FindByID(context.Background(), "missing"); !errors.Is(err, recommendation.ErrRecommendationNotFound) {
		t.Fatalf("expected ErrRecommendationNotFound, got %v", err)
	}
}

func TestRecommendationRepository_List_Filters(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	pending := recommendation.StatusPending
	rows := pgxmock.NewRows(recommendationColumnNames).
		AddRow("rec-1", "user-1", "role-1", "Tech Lead", []byte(`{}`), []byte(`[]`), 3, 0.5, []byte(`{}`), "pending", now, now).
		AddRow("rec-2", "user-1", "role-2", "Architect", []byte(`{}`), []byte(`[]`), 6, 0.5, []byte(`{}`), "pending", now, now)

	mock.ExpectQuery(`FROM recommendations WHERE employee_id = \$1 AND status = \$2\s+ORDER BY created_at ASC, id ASC\s+LIMIT \$3\s+OFFSET \$4`).
		WithArgs("user-1", "pending", 2, 0).
		WillReturnRows(rows)

	recs, nextToken, err := NewRecommendationRepository(mock).List(context.Background(), recommendation.ListRecommendationsFilter{
		EmployeeID: "user-1",
		Status:     &pending,
		Limit:      1,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "rec-1" {
		t.Fatalf("unexpected recommendations %+v", recs)
	}
	if nextToken != "1" {
		t.Fatalf("expected next token '1', got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTranslateRecommendationPgError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"duplicate pair", &pgconn.PgError{Code: uniqueViolationCode}, recommendation.ErrAlreadyExists},
		{"missing employee", &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "recommendations_employee_id_fkey"}, user.ErrUserNotFound},
		{"missing role", &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "recommendations_target_role_id_fkey"}, role.ErrRoleNotFound},
	}

	for _, tc := range cases {
		if got := translateRecommendationPgError(tc.err); !errors.Is(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	otherErr := errors.New("random")
	if translateRecommendationPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}
