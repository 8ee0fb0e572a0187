package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
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

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service はユーザーに関するユースケースをまとめます。
type Service struct {
	repo     Repository
	sessions SessionStore
	clock    Clock
}

// UseCase はユーザーユースケースの公開インターフェースです。
type UseCase interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*User, error)
	UpdateUser(ctx context.Context, in UpdateUserInput) (*User, error)
	SetSkill(ctx context.Context, in SetSkillInput) (*User, error)
	RemoveSkill(ctx context.Context, in RemoveSkillInput) (*User, error)
	DeleteUser(ctx context.Context, in DeleteUserInput) error
	GetUser(ctx context.Context, in GetUserInput) (*User, error)
	ListUsers(ctx context.Context, in ListUsersInput) (*ListUsersResult, error)
	SetCurrentUser(ctx context.Context, in SetCurrentUserInput) (*User, error)
	CurrentUser(ctx context.Context) (*User, error)
}

// NewService は Service を生成します。sessions が nil の場合はセッション系ユースケースが利用できません。
func NewService(repo Repository, sessions SessionStore, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, sessions: sessions, clock: clock}
}

// CreateUserInput はユーザー作成時の入力です。
type CreateUserInput struct {
	Email           string
	Name            string
	Department      string
	Skills          map[string]skill.Proficiency
	Performance     int
	Potential       int
	ExperienceYears float64
	Education       []string
}

// UpdateUserInput はユーザー更新時の入力です。nil のフィールドは変更しません。
type UpdateUserInput struct {
	ID              string
	Name            *string
	Department      *string
	Status          *Status
	Performance     *int
	Potential       *int
	ExperienceYears *float64
	Education       []string
	EducationSet    bool
}

// SetSkillInput はスキル登録・更新時の入力です。
type SetSkillInput struct {
	UserID   string
	Skill    string
	Level    int
	Verified bool
}

// RemoveSkillInput はスキル削除時の入力です。
type RemoveSkillInput struct {
	UserID string
	Skill  string
}

// DeleteUserInput はユーザー削除時の入力です。
type DeleteUserInput struct {
	ID string
}

// GetUserInput はユーザー取得時の入力です。
type GetUserInput struct {
	ID string
}

// SetCurrentUserInput はカレントユーザー切り替え時の入力です。
type SetCurrentUserInput struct {
	ID string
}

// ListUsersInput は一覧取得時の入力です。
type ListUsersInput struct {
	PageSize   int
	PageToken  string
	Status     *Status
	Department string
}

// ListUsersResult は一覧取得結果を表します。
type ListUsersResult struct {
	Users         []*User
	NextPageToken string
}

// CreateUser は新しいユーザーを作成します。
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	now := s.clock.Now()
	u, err := New(Params{
		Email:           in.Email,
		Name:            in.Name,
		Department:      in.Department,
		Skills:          stampSkills(in.Skills, now),
		Performance:     in.Performance,
		Potential:       in.Potential,
		ExperienceYears: in.ExperienceYears,
		Education:       in.Education,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailNotExists(ctx, u.Email); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, u)
}

// UpdateUser はユーザー情報を更新します。
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserInput) (*User, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	existing, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		updatedName := strings.TrimSpace(*in.Name)
		if updatedName == "" {
			return nil, ErrInvalidName
		}
		existing.Name = updatedName
	}

	if in.Department != nil {
		existing.Department = strings.TrimSpace(*in.Department)
	}

	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		existing.Status = *in.Status
	}

	if in.Performance != nil {
		existing.Performance = *in.Performance
	}
	if in.Potential != nil {
		existing.Potential = *in.Potential
	}
	if in.ExperienceYears != nil {
		existing.ExperienceYears = *in.ExperienceYears
	}
	if in.EducationSet {
		existing.Education = normalizeEducation(in.Education)
	}

	if err := existing.validate(); err != nil {
		return nil, err
	}

	existing.UpdatedAt = s.clock.Now()

	return s.repo.Update(ctx, existing)
}

// SetSkill はユーザーのスキルを登録または更新します。
func (s *Service) SetSkill(ctx context.Context, in SetSkillInput) (*User, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("user_id: %w", ErrInvalidID)
	}

	name, err := skill.NormalizeName(in.Skill)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	proficiency, err := skill.NewProficiency(in.Level, in.Verified, now)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if existing.Skills == nil {
		existing.Skills = make(map[string]skill.Proficiency)
	}
	existing.Skills[name] = proficiency
	existing.UpdatedAt = now

	return s.repo.Update(ctx, existing)
}

// RemoveSkill はユーザーのスキルを削除します。存在しないスキルの削除は何もしません。
func (s *Service) RemoveSkill(ctx context.Context, in RemoveSkillInput) (*User, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("user_id: %w", ErrInvalidID)
	}

	name, err := skill.NormalizeName(in.Skill)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if _, ok := existing.Skills[name]; !ok {
		return existing, nil
	}
	delete(existing.Skills, name)
	existing.UpdatedAt = s.clock.Now()

	return s.repo.Update(ctx, existing)
}

// DeleteUser はユーザーを削除します。
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, in.ID)
}

// GetUser は ID でユーザーを取得します。
func (s *Service) GetUser(ctx context.Context, in GetUserInput) (*User, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// ListUsers はユーザーの一覧を取得します。
func (s *Service) ListUsers(ctx context.Context, in ListUsersInput) (*ListUsersResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var statusPtr *Status
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		statusPtr = &status
	}

	users, nextToken, err := s.repo.List(ctx, ListUsersFilter{
		Limit:      limit,
		Offset:     offset,
		Status:     statusPtr,
		Department: strings.TrimSpace(in.Department),
	})
	if err != nil {
		return nil, err
	}

	return &ListUsersResult{
		Users:         users,
		NextPageToken: nextToken,
	}, nil
}

// SetCurrentUser は指定ユーザーをカレントユーザーとして記録します。
func (s *Service) SetCurrentUser(ctx context.Context, in SetCurrentUserInput) (*User, error) {
	if s.sessions == nil {
		return nil, ErrSessionUnavailable
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	found, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetCurrentUser(ctx, found); err != nil {
		return nil, err
	}
	return found, nil
}

// CurrentUser はカレントユーザーを最新の状態で返します。
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	if s.sessions == nil {
		return nil, ErrSessionUnavailable
	}

	snapshot, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, snapshot.ID)
}

// ensureEmailNotExists は重複チェックを行います。キーバリューストアでは全件走査になります。
func (s *Service) ensureEmailNotExists(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if user != nil {
		return ErrEmailAlreadyExists
	}
	return nil
}

func stampSkills(in map[string]skill.Proficiency, now time.Time) map[string]skill.Proficiency {
	out := make(map[string]skill.Proficiency, len(in))
	for name, p := range in {
		if p.LastUpdated.IsZero() {
			p.LastUpdated = now
		}
		out[name] = p
	}
	return out
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
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
