package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogurasousui/codex-grpc-talent/internal/app"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	content := fmt.Sprintf(`server:
  listen_addr: ":0"
log:
  level: error
storage:
  driver: sqlite
  sqlite:
    path: %s
`, filepath.Join(dir, "talent.db"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := execute(append([]string{"--config", cfgPath}, args...), &out)
	return out.String(), err
}

func createEmployee(t *testing.T, cfgPath string) string {
	t.Helper()

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	ctx := context.Background()
	a, err := app.New(ctx, cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	u, err := a.Users.CreateUser(ctx, user.CreateUserInput{
		Email: "dev@example.com",
		Name:  "Dev",
		Skills: map[string]skill.Proficiency{
			"JavaScript": {Level: 2},
			"TypeScript": {Level: 3},
		},
		Performance:     4,
		Potential:       4,
		ExperienceYears: 3,
	})
	require.NoError(t, err)
	return u.ID
}

func TestTalentctl_Workflow(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t)

	out, err := run(t, cfgPath, "seed", "--users", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 5 users, 5 roles")

	out, err = run(t, cfgPath, "roles")
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Frontend Engineer")

	_, err = run(t, cfgPath, "compare", "Senior Frontend Engineer")
	require.ErrorIs(t, err, user.ErrNoCurrentUser)

	userID := createEmployee(t, cfgPath)

	out, err = run(t, cfgPath, "use", userID)
	require.NoError(t, err)
	assert.Contains(t, out, "current user: Dev <dev@example.com>")

	out, err = run(t, cfgPath, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "dev@example.com")
	assert.Contains(t, out, "JavaScript")

	out, err = run(t, cfgPath, "compare", "senior frontend engineer")
	require.NoError(t, err)
	assert.Contains(t, out, "Dev -> Senior Frontend Engineer")
	assert.Contains(t, out, "JavaScript")

	out, err = run(t, cfgPath, "recommend", "Senior Frontend Engineer")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 3)
	require.Equal(t, "recommendation", fields[0])
	recID := fields[1]
	assert.Equal(t, "(pending)", fields[2])

	out, err = run(t, cfgPath, "recommendations")
	require.NoError(t, err)
	assert.Contains(t, out, recID)

	for _, step := range []struct{ cmd, want string }{
		{"accept", "accepted"},
		{"start", "in_progress"},
		{"complete", "completed"},
	} {
		out, err = run(t, cfgPath, step.cmd, recID)
		require.NoError(t, err, step.cmd)
		assert.Contains(t, out, step.want)
	}

	_, err = run(t, cfgPath, "progress", recID, "missing", "abc")
	require.Error(t, err)

	out, err = run(t, cfgPath, "reset", recID)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted "+recID)
}

func TestTalentctl_HelpDoesNotOpenStore(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := execute([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "help"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "talentctl")
}
