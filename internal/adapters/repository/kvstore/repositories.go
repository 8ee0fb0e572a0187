package kvstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

// UserRepository は user.Repository の実装です。
type UserRepository struct {
	coll collection[user.User]
}

var _ user.Repository = (*UserRepository)(nil)

// Create はユーザーを追加します。メールアドレスの重複確認は全件走査です。
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	var created *user.User
	err := r.coll.mutate(ctx, func(items []*user.User) ([]*user.User, error) {
		if indexOf(items, func(it *user.User) bool { return strings.EqualFold(it.Email, u.Email) }) >= 0 {
			return nil, user.ErrEmailAlreadyExists
		}
		stored := u.Clone()
		if stored.ID == "" {
			stored.ID = r.coll.newID()
		}
		created = stored.Clone()
		return append(items, stored), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update はユーザーを置き換えます。
func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	err := r.coll.mutate(ctx, func(items []*user.User) ([]*user.User, error) {
		idx := indexOf(items, func(it *user.User) bool { return it.ID == u.ID })
		if idx < 0 {
			return nil, user.ErrUserNotFound
		}
		if dup := indexOf(items, func(it *user.User) bool {
			return it.ID != u.ID && strings.EqualFold(it.Email, u.Email)
		}); dup >= 0 {
			return nil, user.ErrEmailAlreadyExists
		}
		items[idx] = u.Clone()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return u.Clone(), nil
}

// Delete はユーザーを削除します。対象社員のレコメンデーションも同じトランザクションで削除します。
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.coll.mutateThen(ctx, func(items []*user.User) ([]*user.User, error) {
		idx := indexOf(items, func(it *user.User) bool { return it.ID == id })
		if idx < 0 {
			return nil, user.ErrUserNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	}, func(ctx context.Context, tx *sql.Tx) error {
		return r.coll.store.removeRecommendations(ctx, tx, func(rec *recommendation.Recommendation) bool {
			return rec.EmployeeID == id
		})
	})
}

// FindByID は ID でユーザーを取得します。
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.find(ctx, func(it *user.User) bool { return it.ID == id })
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.find(ctx, func(it *user.User) bool { return strings.EqualFold(it.Email, email) })
}

// List は挿入順にユーザーを返します。
func (r *UserRepository) List(ctx context.Context, filter user.ListUsersFilter) ([]*user.User, string, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := make([]*user.User, 0, len(items))
	for _, it := range items {
		if filter.Status != nil && it.Status != *filter.Status {
			continue
		}
		if filter.Department != "" && !strings.EqualFold(it.Department, filter.Department) {
			continue
		}
		filtered = append(filtered, it)
	}

	page, next := paginate(filtered, filter.Offset, filter.Limit)
	return page, next, nil
}

func (r *UserRepository) find(ctx context.Context, match func(*user.User) bool) (*user.User, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, match); idx >= 0 {
		return items[idx], nil
	}
	return nil, user.ErrUserNotFound
}

// RoleRepository は role.Repository の実装です。
type RoleRepository struct {
	coll collection[role.Role]
}

var _ role.Repository = (*RoleRepository)(nil)

// Create はロールを追加します。
func (r *RoleRepository) Create(ctx context.Context, ro *role.Role) (*role.Role, error) {
	var created *role.Role
	err := r.coll.mutate(ctx, func(items []*role.Role) ([]*role.Role, error) {
		if indexOf(items, func(it *role.Role) bool { return strings.EqualFold(it.Title, ro.Title) }) >= 0 {
			return nil, role.ErrTitleAlreadyExists
		}
		stored := ro.Clone()
		if stored.ID == "" {
			stored.ID = r.coll.newID()
		}
		created = stored.Clone()
		return append(items, stored), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update はロールを置き換えます。
func (r *RoleRepository) Update(ctx context.Context, ro *role.Role) (*role.Role, error) {
	err := r.coll.mutate(ctx, func(items []*role.Role) ([]*role.Role, error) {
		idx := indexOf(items, func(it *role.Role) bool { return it.ID == ro.ID })
		if idx < 0 {
			return nil, role.ErrRoleNotFound
		}
		items[idx] = ro.Clone()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return ro.Clone(), nil
}

// Delete はロールを削除します。このロールを目標とするレコメンデーションも削除します。
func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	return r.coll.mutateThen(ctx, func(items []*role.Role) ([]*role.Role, error) {
		idx := indexOf(items, func(it *role.Role) bool { return it.ID == id })
		if idx < 0 {
			return nil, role.ErrRoleNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	}, func(ctx context.Context, tx *sql.Tx) error {
		return r.coll.store.removeRecommendations(ctx, tx, func(rec *recommendation.Recommendation) bool {
			return rec.TargetRoleID == id
		})
	})
}

// FindByID は ID でロールを取得します。
func (r *RoleRepository) FindByID(ctx context.Context, id string) (*role.Role, error) {
	return r.find(ctx, func(it *role.Role) bool { return it.ID == id })
}

// FindByTitle はロール名で取得します。大文字小文字は区別しません。
func (r *RoleRepository) FindByTitle(ctx context.Context, title string) (*role.Role, error) {
	return r.find(ctx, func(it *role.Role) bool { return strings.EqualFold(it.Title, strings.TrimSpace(title)) })
}

// List は挿入順にロールを返します。
func (r *RoleRepository) List(ctx context.Context, filter role.ListRolesFilter) ([]*role.Role, string, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := make([]*role.Role, 0, len(items))
	for _, it := range items {
		if filter.Department != "" && !strings.EqualFold(it.Department, filter.Department) {
			continue
		}
		filtered = append(filtered, it)
	}

	page, next := paginate(filtered, filter.Offset, filter.Limit)
	return page, next, nil
}

func (r *RoleRepository) find(ctx context.Context, match func(*role.Role) bool) (*role.Role, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, match); idx >= 0 {
		return items[idx], nil
	}
	return nil, role.ErrRoleNotFound
}

// CourseRepository は course.Repository の実装です。
type CourseRepository struct {
	coll collection[course.Course]
}

var _ course.Repository = (*CourseRepository)(nil)

// Create はコースを追加します。
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) (*course.Course, error) {
	stored := *c
	err := r.coll.mutate(ctx, func(items []*course.Course) ([]*course.Course, error) {
		if stored.ID == "" {
			stored.ID = r.coll.newID()
		}
		record := stored
		return append(items, &record), nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete はコースを削除します。
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	return r.coll.mutate(ctx, func(items []*course.Course) ([]*course.Course, error) {
		idx := indexOf(items, func(it *course.Course) bool { return it.ID == id })
		if idx < 0 {
			return nil, course.ErrCourseNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

// FindByID は ID でコースを取得します。
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*course.Course, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, func(it *course.Course) bool { return it.ID == id }); idx >= 0 {
		return items[idx], nil
	}
	return nil, course.ErrCourseNotFound
}

// List は挿入順にコースを返します。
func (r *CourseRepository) List(ctx context.Context, filter course.ListCoursesFilter) ([]*course.Course, string, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := make([]*course.Course, 0, len(items))
	for _, it := range items {
		if filter.Skill != "" && !strings.EqualFold(it.Skill, filter.Skill) {
			continue
		}
		filtered = append(filtered, it)
	}

	page, next := paginate(filtered, filter.Offset, filter.Limit)
	return page, next, nil
}

// RecommendationRepository は recommendation.Repository の実装です。
type RecommendationRepository struct {
	coll collection[recommendation.Recommendation]
}

var _ recommendation.Repository = (*RecommendationRepository)(nil)

// Create はレコメンデーションを追加します。同じ社員・ロールの組み合わせは 1 件までです。
func (r *RecommendationRepository) Create(ctx context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	var created *recommendation.Recommendation
	err := r.coll.mutate(ctx, func(items []*recommendation.Recommendation) ([]*recommendation.Recommendation, error) {
		if indexOf(items, sameTarget(rec.EmployeeID, rec.TargetRoleID)) >= 0 {
			return nil, recommendation.ErrAlreadyExists
		}
		stored := rec.Clone()
		if stored.ID == "" {
			stored.ID = r.coll.newID()
		}
		created = stored.Clone()
		return append(items, stored), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update はレコメンデーションを置き換えます。
func (r *RecommendationRepository) Update(ctx context.Context, rec *recommendation.Recommendation) (*recommendation.Recommendation, error) {
	err := r.coll.mutate(ctx, func(items []*recommendation.Recommendation) ([]*recommendation.Recommendation, error) {
		idx := indexOf(items, func(it *recommendation.Recommendation) bool { return it.ID == rec.ID })
		if idx < 0 {
			return nil, recommendation.ErrRecommendationNotFound
		}
		items[idx] = rec.Clone()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// Delete はレコメンデーションを削除します。
func (r *RecommendationRepository) Delete(ctx context.Context, id string) error {
	return r.coll.mutate(ctx, func(items []*recommendation.Recommendation) ([]*recommendation.Recommendation, error) {
		idx := indexOf(items, func(it *recommendation.Recommendation) bool { return it.ID == id })
		if idx < 0 {
			return nil, recommendation.ErrRecommendationNotFound
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

// FindByID は ID でレコメンデーションを取得します。
func (r *RecommendationRepository) FindByID(ctx context.Context, id string) (*recommendation.Recommendation, error) {
	return r.find(ctx, func(it *recommendation.Recommendation) bool { return it.ID == id })
}

// FindByEmployeeAndRole は社員と目標ロールの組み合わせで取得します。
func (r *RecommendationRepository) FindByEmployeeAndRole(ctx context.Context, employeeID, roleID string) (*recommendation.Recommendation, error) {
	return r.find(ctx, sameTarget(employeeID, roleID))
}

// List は挿入順にレコメンデーションを返します。
func (r *RecommendationRepository) List(ctx context.Context, filter recommendation.ListRecommendationsFilter) ([]*recommendation.Recommendation, string, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, "", err
	}

	filtered := make([]*recommendation.Recommendation, 0, len(items))
	for _, it := range items {
		if filter.EmployeeID != "" && it.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != nil && it.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, it)
	}

	page, next := paginate(filtered, filter.Offset, filter.Limit)
	return page, next, nil
}

func (r *RecommendationRepository) find(ctx context.Context, match func(*recommendation.Recommendation) bool) (*recommendation.Recommendation, error) {
	items, err := r.coll.all(ctx)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(items, match); idx >= 0 {
		return items[idx], nil
	}
	return nil, recommendation.ErrRecommendationNotFound
}

func sameTarget(employeeID, roleID string) func(*recommendation.Recommendation) bool {
	return func(it *recommendation.Recommendation) bool {
		return it.EmployeeID == employeeID && it.TargetRoleID == roleID
	}
}

// SessionStore は user.SessionStore の実装です。
type SessionStore struct {
	store *Store
}

var _ user.SessionStore = (*SessionStore)(nil)

// CurrentUser は保存されたカレントユーザーのスナップショットを返します。
func (s *SessionStore) CurrentUser(ctx context.Context) (*user.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var u user.User
	found, err := s.store.load(ctx, s.store.db, KeyCurrentUser, &u)
	if err != nil {
		return nil, err
	}
	if !found || u.ID == "" {
		return nil, user.ErrNoCurrentUser
	}
	return &u, nil
}

// SetCurrentUser はカレントユーザーを保存します。nil の場合は解除します。
func (s *SessionStore) SetCurrentUser(ctx context.Context, u *user.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if u == nil {
		return s.store.remove(ctx, KeyCurrentUser)
	}
	return s.store.save(ctx, s.store.db, KeyCurrentUser, u)
}
