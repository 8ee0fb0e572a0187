package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var roleColumnNames = []string{"id", "title", "department", "required_skills", "experience_years", "education", "created_at", "updated_at"}

func TestScanRole_DecodesRequirements(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`WHERE lower\(title\) = lower\(\$1\)`).
		WithArgs("tech lead").
		WillReturnRows(pgxmock.NewRows(roleColumnNames).AddRow(
			"role-1", "Tech Lead", "Engineering",
			[]byte(`{"JavaScript":{"minimumLevel":4,"weight":1,"critical":true}}`),
			5.0, []byte(`["BSc"]`), now, now,
		))

	ro, err := NewRoleRepository(mock).FindByTitle(context.Background(), " tech lead ")
	if err != nil {
		t.Fatalf("FindByTitle returned error: %v", err)
	}

	req, ok := ro.RequiredSkills["JavaScript"]
	if !ok || req.MinimumLevel != 4 || !req.Critical {
		t.Fatalf("unexpected requirements %+v", ro.RequiredSkills)
	}
	if ro.ExperienceYears != 5 || len(ro.Education) != 1 {
		t.Fatalf("unexpected role %+v", ro)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScanRole_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	if _, err := scanRole(row); !errors.Is(err, role.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestScanRole_InvalidDocument(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		*(dest[3].(*[]byte)) = []byte(`{broken`)
		return nil
	}}

	if _, err := scanRole(row); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestTranslateRolePgError(t *testing.T) {
	t.Parallel()

	if !errors.Is(translateRolePgError(&pgconn.PgError{Code: uniqueViolationCode}), role.ErrTitleAlreadyExists) {
		t.Fatalf("expected title exists error mapping")
	}

	otherErr := errors.New("random")
	if translateRolePgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestRoleRepository_List_DepartmentFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now().UTC()
	rows := pgxmock.NewRows(roleColumnNames).
		AddRow("role-1", "Tech Lead", "Engineering", []byte(`{}`), 5.0, []byte(`[]`), now, now).
		AddRow("role-2", "Architect", "Engineering", []byte(`{}`), 8.0, []byte(`[]`), now, now)

	mock.ExpectQuery(`FROM roles WHERE lower\(department\) = lower\(\$1\)\s+ORDER BY created_at ASC, id ASC\s+LIMIT \$2\s+OFFSET \$3`).
		WithArgs("Engineering", 2, 5).
		WillReturnRows(rows)

	roles, nextToken, err := NewRoleRepository(mock).List(context.Background(), role.ListRolesFilter{Limit: 1, Offset: 5, Department: "Engineering"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != "role-1" {
		t.Fatalf("unexpected roles %+v", roles)
	}
	if nextToken != "6" {
		t.Fatalf("expected next token '6', got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRoleRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM roles WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := NewRoleRepository(mock).Delete(context.Background(), "missing"); !errors.Is(err, role.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
