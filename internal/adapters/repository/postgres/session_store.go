package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	pgdb "github.com/ogurasousui/codex-grpc-talent/internal/platform/db/postgres"
)

const currentUserKey = "currentUser"

// SessionStore は app_state テーブルにカレントユーザーのスナップショットを保持します。
type SessionStore struct {
	pool pgdb.Queryer
	now  func() time.Time
}

var _ user.SessionStore = (*SessionStore)(nil)

// NewSessionStore は SessionStore を生成します。
func NewSessionStore(pool pgdb.Queryer) *SessionStore {
	return &SessionStore{pool: pool, now: func() time.Time { return time.Now().UTC() }}
}

// CurrentUser は保存されたカレントユーザーを返します。
func (s *SessionStore) CurrentUser(ctx context.Context) (*user.User, error) {
	exec := pgdb.QueryerFromContext(ctx, s.pool)

	var raw []byte
	if err := exec.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, currentUserKey).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNoCurrentUser
		}
		return nil, err
	}

	var u user.User
	if err := decodeJSON("app_state.value", raw, &u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, user.ErrNoCurrentUser
	}
	return &u, nil
}

// SetCurrentUser はカレントユーザーを保存します。nil の場合は解除します。
func (s *SessionStore) SetCurrentUser(ctx context.Context, u *user.User) error {
	exec := pgdb.QueryerFromContext(ctx, s.pool)

	if u == nil {
		_, err := exec.Exec(ctx, `DELETE FROM app_state WHERE key = $1`, currentUserKey)
		return err
	}

	value, err := encodeJSON("app_state.value", u)
	if err != nil {
		return err
	}
	_, err = exec.Exec(ctx, `
        INSERT INTO app_state (key, value, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
    `, currentUserKey, value, s.now())
	return err
}
