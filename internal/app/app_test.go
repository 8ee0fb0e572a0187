package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{ListenAddr: ":0"},
		Storage: config.StorageConfig{
			Driver: config.DriverSQLite,
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "talent.db")},
		},
	}
}

func TestNew_SQLiteWiresServices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.Equal(t, config.DriverSQLite, a.Driver())

	u, err := a.Users.CreateUser(ctx, user.CreateUserInput{
		Email:       "dev@example.com",
		Name:        "Dev",
		Skills:      map[string]skill.Proficiency{"Go": {Level: 2}},
		Performance: 3,
		Potential:   3,
	})
	require.NoError(t, err)

	_, err = a.Roles.CreateRole(ctx, role.CreateRoleInput{
		Title:          "Backend Engineer",
		RequiredSkills: map[string]skill.Requirement{"Go": {MinimumLevel: 4, Weight: 1}},
	})
	require.NoError(t, err)

	rec, err := a.Recommendations.Generate(ctx, recommendation.GenerateInput{EmployeeID: u.ID, Role: "backend engineer"})
	require.NoError(t, err)
	assert.Equal(t, recommendation.StatusPending, rec.Status)

	svcs := a.Services()
	assert.NotNil(t, svcs.Users)
	assert.NotNil(t, svcs.Recommendations)
}

func TestNew_RejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := sqliteConfig(t)
	cfg.Storage.Driver = "redis"

	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestNew_SQLiteDeleteCascadesToRecommendations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := New(ctx, sqliteConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	u, err := a.Users.CreateUser(ctx, user.CreateUserInput{
		Email:       "dev@example.com",
		Name:        "Dev",
		Skills:      map[string]skill.Proficiency{"Go": {Level: 2}},
		Performance: 3,
		Potential:   3,
	})
	require.NoError(t, err)

	requirements := map[string]skill.Requirement{"Go": {MinimumLevel: 4, Weight: 1}}
	backend, err := a.Roles.CreateRole(ctx, role.CreateRoleInput{Title: "Backend Engineer", RequiredSkills: requirements})
	require.NoError(t, err)
	_, err = a.Roles.CreateRole(ctx, role.CreateRoleInput{Title: "Platform Engineer", RequiredSkills: requirements})
	require.NoError(t, err)

	orphan, err := a.Recommendations.Generate(ctx, recommendation.GenerateInput{EmployeeID: u.ID, Role: backend.ID})
	require.NoError(t, err)
	kept, err := a.Recommendations.Generate(ctx, recommendation.GenerateInput{EmployeeID: u.ID, Role: "Platform Engineer"})
	require.NoError(t, err)

	require.NoError(t, a.Roles.DeleteRole(ctx, role.DeleteRoleInput{ID: backend.ID}))

	_, err = a.Recommendations.Get(ctx, recommendation.GetInput{ID: orphan.ID})
	assert.ErrorIs(t, err, recommendation.ErrRecommendationNotFound)
	_, err = a.Recommendations.Accept(ctx, recommendation.TransitionInput{ID: orphan.ID})
	assert.ErrorIs(t, err, recommendation.ErrRecommendationNotFound)

	_, err = a.Recommendations.Get(ctx, recommendation.GetInput{ID: kept.ID})
	require.NoError(t, err)

	require.NoError(t, a.Users.DeleteUser(ctx, user.DeleteUserInput{ID: u.ID}))

	list, err := a.Recommendations.List(ctx, recommendation.ListInput{EmployeeID: u.ID})
	require.NoError(t, err)
	assert.Empty(t, list.Recommendations)
}
