package role

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service はロールに関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase はロールユースケースの公開インターフェースです。
type UseCase interface {
	CreateRole(ctx context.Context, in CreateRoleInput) (*Role, error)
	UpdateRole(ctx context.Context, in UpdateRoleInput) (*Role, error)
	DeleteRole(ctx context.Context, in DeleteRoleInput) error
	GetRole(ctx context.Context, in GetRoleInput) (*Role, error)
	ResolveRole(ctx context.Context, ref string) (*Role, error)
	ListRoles(ctx context.Context, in ListRolesInput) (*ListRolesResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreateRoleInput はロール作成時の入力です。
type CreateRoleInput struct {
	Title           string
	Department      string
	RequiredSkills  map[string]skill.Requirement
	ExperienceYears float64
	Education       []string
}

// UpdateRoleInput はロール更新時の入力です。RequiredSkillsSet が true の場合は要求スキルを置き換えます。
type UpdateRoleInput struct {
	ID                string
	Title             *string
	Department        *string
	RequiredSkills    map[string]skill.Requirement
	RequiredSkillsSet bool
	ExperienceYears   *float64
	Education         []string
	EducationSet      bool
}

// DeleteRoleInput はロール削除時の入力です。
type DeleteRoleInput struct {
	ID string
}

// GetRoleInput はロール取得時の入力です。
type GetRoleInput struct {
	ID string
}

// ListRolesInput は一覧取得時の入力です。
type ListRolesInput struct {
	PageSize   int
	PageToken  string
	Department string
}

// ListRolesResult は一覧取得結果を表します。
type ListRolesResult struct {
	Roles         []*Role
	NextPageToken string
}

// CreateRole は新しいロールを作成します。
func (s *Service) CreateRole(ctx context.Context, in CreateRoleInput) (*Role, error) {
	r, err := New(Params{
		Title:           in.Title,
		Department:      in.Department,
		RequiredSkills:  in.RequiredSkills,
		ExperienceYears: in.ExperienceYears,
		Education:       in.Education,
	}, s.clock.Now())
	if err != nil {
		return nil, err
	}

	var created *Role
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if err := s.ensureTitleNotExists(txCtx, r.Title, ""); err != nil {
			return err
		}

		result, err := s.repo.Create(txCtx, r)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateRole はロール情報を更新します。
func (s *Service) UpdateRole(ctx context.Context, in UpdateRoleInput) (*Role, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Role
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Title != nil {
			title, err := normalizeTitle(*in.Title)
			if err != nil {
				return err
			}
			if !strings.EqualFold(title, existing.Title) {
				if err := s.ensureTitleNotExists(txCtx, title, existing.ID); err != nil {
					return err
				}
			}
			existing.Title = title
		}

		if in.Department != nil {
			existing.Department = strings.TrimSpace(*in.Department)
		}

		if in.RequiredSkillsSet {
			required, err := skill.NormalizeRequirements(in.RequiredSkills)
			if err != nil {
				return err
			}
			existing.RequiredSkills = required
		}

		if in.ExperienceYears != nil {
			if *in.ExperienceYears < 0 {
				return ErrInvalidExperience
			}
			existing.ExperienceYears = *in.ExperienceYears
		}

		if in.EducationSet {
			existing.Education = normalizeEducation(in.Education)
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteRole はロールを削除します。
func (s *Service) DeleteRole(ctx context.Context, in DeleteRoleInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetRole は ID でロールを取得します。
func (s *Service) GetRole(ctx context.Context, in GetRoleInput) (*Role, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Role
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ResolveRole は ID またはロール名でロールを取得します。ID が優先されます。
func (s *Service) ResolveRole(ctx context.Context, ref string) (*Role, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return nil, fmt.Errorf("role: %w", ErrInvalidID)
	}

	var result *Role
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, trimmed)
		if err == nil {
			result = found
			return nil
		}
		if !errors.Is(err, ErrRoleNotFound) {
			return err
		}

		found, err = s.repo.FindByTitle(txCtx, trimmed)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// ListRoles はロールの一覧を取得します。
func (s *Service) ListRoles(ctx context.Context, in ListRolesInput) (*ListRolesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var (
		roles     []*Role
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListRolesFilter{
			Limit:      limit,
			Offset:     offset,
			Department: strings.TrimSpace(in.Department),
		})
		if err != nil {
			return err
		}
		roles = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListRolesResult{Roles: roles, NextPageToken: nextToken}, nil
}

func (s *Service) ensureTitleNotExists(ctx context.Context, title, selfID string) error {
	found, err := s.repo.FindByTitle(ctx, title)
	if err != nil && !errors.Is(err, ErrRoleNotFound) {
		return err
	}
	if found != nil && found.ID != selfID {
		return ErrTitleAlreadyExists
	}
	return nil
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
