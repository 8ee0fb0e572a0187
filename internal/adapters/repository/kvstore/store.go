// Package kvstore は SQLite 上のキーバリューエントリにコレクションを JSON 配列として保存するストアです。
//
// 各コレクション (users, roles, courses, recommendations) は 1 エントリに挿入順の配列として保持され、
// カレントユーザーは currentUser エントリに保持されます。更新はエントリ単位の読み込み・変更・書き込みです。
package kvstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

const (
	KeyUsers           = "users"
	KeyRoles           = "roles"
	KeyCourses         = "courses"
	KeyRecommendations = "recommendations"
	KeyCurrentUser     = "currentUser"
)

const schema = `CREATE TABLE IF NOT EXISTS entries (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store はキーバリューストア本体です。
type Store struct {
	db    *sql.DB
	mu    sync.Mutex
	newID func() string
	now   func() time.Time
}

// Option は Store の生成オプションです。
type Option func(*Store)

// WithIDGenerator はレコード ID の生成関数を差し替えます。
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New は Store を生成し、entries テーブルを用意します。
func New(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	if db == nil {
		return nil, errors.New("kvstore: db is required")
	}

	s := &Store{
		db:    db,
		newID: func() string { return ulid.Make().String() },
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("kvstore: create entries: %w", err)
	}
	return s, nil
}

// Users はユーザーリポジトリを返します。
func (s *Store) Users() *UserRepository {
	return &UserRepository{coll: collection[user.User]{store: s, key: KeyUsers}}
}

// Roles はロールリポジトリを返します。
func (s *Store) Roles() *RoleRepository {
	return &RoleRepository{coll: collection[role.Role]{store: s, key: KeyRoles}}
}

// Courses はコースリポジトリを返します。
func (s *Store) Courses() *CourseRepository {
	return &CourseRepository{coll: collection[course.Course]{store: s, key: KeyCourses}}
}

// Recommendations はレコメンデーションリポジトリを返します。
func (s *Store) Recommendations() *RecommendationRepository {
	return &RecommendationRepository{coll: collection[recommendation.Recommendation]{store: s, key: KeyRecommendations}}
}

// Sessions はカレントユーザーのセッションストアを返します。
func (s *Store) Sessions() *SessionStore {
	return &SessionStore{store: s}
}

// Keys は保存済みのエントリキーを返します。
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT key FROM entries ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("kvstore: list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("kvstore: scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kvstore: iterate keys: %w", err)
	}
	return keys, nil
}

// Clear はすべてのエントリを削除します。
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("kvstore: clear: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, q queryer, key string, out any) (bool, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT value FROM entries WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("kvstore: read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("kvstore: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, q queryer, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: encode %s: %w", key, err)
	}

	const stmt = `INSERT INTO entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := q.ExecContext(ctx, stmt, key, string(raw), s.now()); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}

// removeRecommendations は match に一致するレコメンデーションを tx 内で取り除きます。
func (s *Store) removeRecommendations(ctx context.Context, tx *sql.Tx, match func(*recommendation.Recommendation) bool) error {
	var recs []*recommendation.Recommendation
	found, err := s.load(ctx, tx, KeyRecommendations, &recs)
	if err != nil || !found {
		return err
	}

	kept := make([]*recommendation.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if !match(rec) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(recs) {
		return nil
	}
	return s.save(ctx, tx, KeyRecommendations, kept)
}

// collection はひとつのエントリに保存されたレコード配列です。
type collection[T any] struct {
	store *Store
	key   string
}

func (c collection[T]) all(ctx context.Context) ([]*T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	var items []*T
	if _, err := c.store.load(ctx, c.store.db, c.key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// mutate は配列を読み込んで fn に渡し、戻り値を書き戻します。fn がエラーを返した場合は何も書き込みません。
func (c collection[T]) mutate(ctx context.Context, fn func(items []*T) ([]*T, error)) error {
	return c.mutateThen(ctx, fn, nil)
}

// mutateThen は mutate と同じトランザクション内で、書き戻しの後に then を実行します。
func (c collection[T]) mutateThen(ctx context.Context, fn func(items []*T) ([]*T, error), then func(ctx context.Context, tx *sql.Tx) error) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	tx, err := c.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("kvstore: begin %s: %w", c.key, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var items []*T
	if _, err := c.store.load(ctx, tx, c.key, &items); err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		return err
	}
	if next == nil {
		next = []*T{}
	}

	if err := c.store.save(ctx, tx, c.key, next); err != nil {
		return err
	}

	if then != nil {
		if err := then(ctx, tx); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("kvstore: commit %s: %w", c.key, err)
	}
	committed = true
	return nil
}

func (c collection[T]) newID() string {
	return c.store.newID()
}

func paginate[T any](items []*T, offset, limit int) ([]*T, string) {
	if offset >= len(items) {
		return []*T{}, ""
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	var next string
	if end < len(items) {
		next = strconv.Itoa(end)
	}
	return items[offset:end], next
}

func indexOf[T any](items []*T, match func(*T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}
