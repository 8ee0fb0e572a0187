package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

var userColumnNames = []string{"id", "email", "name", "department", "status", "skills", "performance", "potential", "experience_years", "education", "created_at", "updated_at"}

func TestScanUser_Success(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 12 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "user-1"
		*(dest[1].(*string)) = "user@example.com"
		*(dest[2].(*string)) = "User"
		*(dest[3].(*string)) = "Engineering"
		*(dest[4].(*string)) = string(user.StatusActive)
		*(dest[5].(*[]byte)) = []byte(`{"Go":{"level":4,"verified":true,"lastUpdated":"2025-01-01T00:00:00Z"}}`)
		*(dest[6].(*int)) = 4
		*(dest[7].(*int)) = 3
		*(dest[8].(*float64)) = 2.5
		*(dest[9].(*[]byte)) = []byte(`["BSc"]`)
		*(dest[10].(*time.Time)) = createdAt
		*(dest[11].(*time.Time)) = updatedAt
		return nil
	}}

	u, err := scanUser(row)
	if err != nil {
		t.Fatalf("scanUser returned error: %v", err)
	}

	if u.ID != "user-1" || u.Email != "user@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
	if got := u.Skills["Go"]; got.Level != 4 || !got.Verified {
		t.Fatalf("unexpected skills %+v", u.Skills)
	}
	if u.Performance != 4 || u.Potential != 3 || u.ExperienceYears != 2.5 {
		t.Fatalf("unexpected ratings %+v", u)
	}
	if len(u.Education) != 1 || u.Education[0] != "BSc" {
		t.Fatalf("unexpected education %v", u.Education)
	}
}

func TestScanUser_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanUser(row)
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTranslateUserPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: uniqueViolationCode}
	if !errors.Is(translateUserPgError(pgErr), user.ErrEmailAlreadyExists) {
		t.Fatalf("expected email exists error mapping")
	}

	otherErr := errors.New("random")
	if translateUserPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestUserRepository_Create_EncodesDocuments(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	in := &user.User{
		Email:       "user@example.com",
		Name:        "User",
		Status:      user.StatusActive,
		Skills:      map[string]skill.Proficiency{"Go": {Level: 3, LastUpdated: now}},
		Performance: 4,
		Potential:   3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	skills := []byte(`{"Go":{"level":3,"verified":false,"lastUpdated":"2025-01-01T00:00:00Z"}}`)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("user@example.com", "User", "", "active", skills, 4, 3, 0.0, []byte("null"), now, now).
		WillReturnRows(pgxmock.NewRows(userColumnNames).
			AddRow("user-1", "user@example.com", "User", "", "active", skills, 4, 3, 0.0, []byte("null"), now, now))

	created, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "user-1" || created.Skills["Go"].Level != 3 {
		t.Fatalf("unexpected created user %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err = NewUserRepository(mock).Create(context.Background(), &user.User{Email: "dup@example.com"})
	if !errors.Is(err, user.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_List_WithNextToken(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	now := time.Now().UTC()
	rows := pgxmock.NewRows(userColumnNames).
		AddRow("user-1", "user1@example.com", "User1", "", "active", []byte(`{}`), 3, 3, 1.0, []byte(`[]`), now, now).
		AddRow("user-2", "user2@example.com", "User2", "", "active", []byte(`{}`), 3, 3, 1.0, []byte(`[]`), now, now).
		AddRow("user-3", "user3@example.com", "User3", "", "inactive", []byte(`{}`), 3, 3, 1.0, []byte(`[]`), now, now)

	mock.ExpectQuery(`FROM users\s+ORDER BY created_at ASC, id ASC\s+LIMIT \$1\s+OFFSET \$2`).
		WithArgs(3, 0).
		WillReturnRows(rows)

	users, nextToken, err := repo.List(context.Background(), user.ListUsersFilter{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if nextToken != "2" {
		t.Fatalf("expected next token '2', got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_List_WithFilters(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)
	inactive := user.StatusInactive

	now := time.Now().UTC()
	rows := pgxmock.NewRows(userColumnNames).
		AddRow("user-5", "inactive@example.com", "Inactive", "Sales", "inactive", []byte(`{}`), 2, 2, 0.0, []byte(`[]`), now, now)

	mock.ExpectQuery(`FROM users WHERE status = \$1 AND lower\(department\) = lower\(\$2\)\s+ORDER BY created_at ASC, id ASC\s+LIMIT \$3\s+OFFSET \$4`).
		WithArgs("inactive", "Sales", 3, 0).
		WillReturnRows(rows)

	users, nextToken, err := repo.List(context.Background(), user.ListUsersFilter{Limit: 2, Offset: 0, Status: &inactive, Department: " Sales "})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(users) != 1 || users[0].Department != "Sales" {
		t.Fatalf("unexpected users %+v", users)
	}
	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_List_InvalidArguments(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	if _, _, err := repo.List(context.Background(), user.ListUsersFilter{Limit: 0, Offset: 0}); !errors.Is(err, user.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}

	if _, _, err := repo.List(context.Background(), user.ListUsersFilter{Limit: 1, Offset: -1}); !errors.Is(err, user.ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := NewUserRepository(mock).Delete(context.Background(), "missing"); !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
