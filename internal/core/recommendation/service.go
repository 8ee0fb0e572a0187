package recommendation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/analysis"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"go.uber.org/zap"
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

// UserFinder は分析対象ユーザーを取得します。user.Service が満たします。
type UserFinder interface {
	GetUser(ctx context.Context, in user.GetUserInput) (*user.User, error)
}

// RoleResolver は ID またはロール名から目標ロールを取得します。role.Service が満たします。
type RoleResolver interface {
	ResolveRole(ctx context.Context, ref string) (*role.Role, error)
}

// CourseFinder はスキルに対応する研修コースを検索します。course.Service が満たします。
type CourseFinder interface {
	FindEntryCourse(ctx context.Context, skillName string) (*course.Course, error)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service はレコメンデーションに関するユースケースをまとめます。
type Service struct {
	repo    Repository
	users   UserFinder
	roles   RoleResolver
	courses CourseFinder
	clock   Clock
	tx      TransactionManager
	logger  *zap.Logger
}

// UseCase はレコメンデーションユースケースの公開インターフェースです。
type UseCase interface {
	Compare(ctx context.Context, in CompareInput) (*Comparison, error)
	Generate(ctx context.Context, in GenerateInput) (*Recommendation, error)
	Get(ctx context.Context, in GetInput) (*Recommendation, error)
	List(ctx context.Context, in ListInput) (*ListResult, error)
	Accept(ctx context.Context, in TransitionInput) (*Recommendation, error)
	Start(ctx context.Context, in TransitionInput) (*Recommendation, error)
	Complete(ctx context.Context, in TransitionInput) (*Recommendation, error)
	UpdateItemProgress(ctx context.Context, in UpdateItemProgressInput) (*Recommendation, error)
	CompleteItem(ctx context.Context, in CompleteItemInput) (*Recommendation, error)
	Reset(ctx context.Context, in ResetInput) error
}

// NewService は Service を生成します。courses が nil の場合はコースとの紐付けを行いません。
func NewService(repo Repository, users UserFinder, roles RoleResolver, courses CourseFinder, clock Clock, tx TransactionManager, logger *zap.Logger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:    repo,
		users:   users,
		roles:   roles,
		courses: courses,
		clock:   clock,
		tx:      tx,
		logger:  logger,
	}
}

// CompareInput は比較時の入力です。Role には ID かロール名を指定します。
type CompareInput struct {
	EmployeeID string
	Role       string
}

// Comparison は保存を伴わない比較結果です。
type Comparison struct {
	User   *user.User
	Role   *role.Role
	Result analysis.Result
}

// GenerateInput はレコメンデーション生成時の入力です。
// Refresh が true の場合は既存のレコメンデーションを再計算し pending に戻します。
type GenerateInput struct {
	EmployeeID string
	Role       string
	Refresh    bool
}

// GetInput は取得時の入力です。
type GetInput struct {
	ID string
}

// ListInput は一覧取得時の入力です。
type ListInput struct {
	EmployeeID string
	Status     *Status
	PageSize   int
	PageToken  string
}

// ListResult は一覧取得結果を表します。
type ListResult struct {
	Recommendations []*Recommendation
	NextPageToken   string
}

// TransitionInput は状態遷移時の入力です。
type TransitionInput struct {
	ID string
}

// UpdateItemProgressInput は学習アイテムの進捗更新時の入力です。
type UpdateItemProgressInput struct {
	RecommendationID string
	ItemID           string
	Progress         int
}

// CompleteItemInput は学習アイテム完了時の入力です。
type CompleteItemInput struct {
	RecommendationID string
	ItemID           string
}

// ResetInput は削除時の入力です。
type ResetInput struct {
	ID string
}

// Compare はユーザーと目標ロールを比較します。結果は保存しません。
func (s *Service) Compare(ctx context.Context, in CompareInput) (*Comparison, error) {
	u, r, err := s.resolve(ctx, in.EmployeeID, in.Role)
	if err != nil {
		return nil, err
	}

	return &Comparison{User: u, Role: r, Result: analysis.Analyze(u, r)}, nil
}

// Generate は社員と目標ロールのレコメンデーションを返します。存在しなければ生成して保存します。
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*Recommendation, error) {
	u, r, err := s.resolve(ctx, in.EmployeeID, in.Role)
	if err != nil {
		return nil, err
	}

	var result *Recommendation
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByEmployeeAndRole(txCtx, u.ID, r.ID)
		if err != nil && !errors.Is(err, ErrRecommendationNotFound) {
			return err
		}
		if existing != nil && !in.Refresh {
			result = existing
			return nil
		}

		now := s.clock.Now()
		res := analysis.Analyze(u, r)

		if existing != nil {
			existing.apply(res)
			existing.TargetRoleTitle = r.Title
			existing.Status = StatusPending
			existing.UpdatedAt = now
			if err := s.linkCourses(txCtx, existing); err != nil {
				return err
			}
			updated, err := s.repo.Update(txCtx, existing)
			if err != nil {
				return err
			}
			result = updated
			s.logger.Info("recommendation refreshed",
				zap.String("recommendation_id", updated.ID),
				zap.String("employee_id", u.ID),
				zap.String("role_id", r.ID),
			)
			return nil
		}

		rec, err := New(u.ID, r, res, now)
		if err != nil {
			return err
		}
		if err := s.linkCourses(txCtx, rec); err != nil {
			return err
		}
		created, err := s.repo.Create(txCtx, rec)
		if err != nil {
			return err
		}
		result = created
		s.logger.Info("recommendation generated",
			zap.String("recommendation_id", created.ID),
			zap.String("employee_id", u.ID),
			zap.String("role_id", r.ID),
			zap.Int("items", len(created.LearningPath)),
			zap.Int("timeline_months", created.TimelineMonths),
		)
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// Get は ID でレコメンデーションを取得します。
func (s *Service) Get(ctx context.Context, in GetInput) (*Recommendation, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Recommendation
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

// List はレコメンデーションの一覧を取得します。
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
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
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		statusPtr = &status
	}

	var (
		recs      []*Recommendation
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListRecommendationsFilter{
			EmployeeID: strings.TrimSpace(in.EmployeeID),
			Status:     statusPtr,
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return err
		}
		recs = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListResult{Recommendations: recs, NextPageToken: nextToken}, nil
}

// Accept はレコメンデーションを accepted にします。
func (s *Service) Accept(ctx context.Context, in TransitionInput) (*Recommendation, error) {
	return s.transition(ctx, in.ID, StatusAccepted)
}

// Start はレコメンデーションを in_progress にします。
func (s *Service) Start(ctx context.Context, in TransitionInput) (*Recommendation, error) {
	return s.transition(ctx, in.ID, StatusInProgress)
}

// Complete はレコメンデーションを completed にします。
func (s *Service) Complete(ctx context.Context, in TransitionInput) (*Recommendation, error) {
	return s.transition(ctx, in.ID, StatusCompleted)
}

// UpdateItemProgress は学習アイテムの進捗を更新します。レコメンデーションの状態は変わりません。
func (s *Service) UpdateItemProgress(ctx context.Context, in UpdateItemProgressInput) (*Recommendation, error) {
	if strings.TrimSpace(in.RecommendationID) == "" {
		return nil, fmt.Errorf("recommendation_id: %w", ErrInvalidID)
	}
	if strings.TrimSpace(in.ItemID) == "" {
		return nil, fmt.Errorf("item_id: %w", ErrItemNotFound)
	}
	if in.Progress < minProgress || in.Progress > maxProgress {
		return nil, ErrInvalidProgress
	}

	var updated *Recommendation
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.RecommendationID)
		if err != nil {
			return err
		}

		item, err := existing.SetItemProgress(in.ItemID, in.Progress, s.clock.Now())
		if err != nil {
			return err
		}

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result

		if item.Status == ItemCompleted {
			s.logger.Info("learning item completed",
				zap.String("recommendation_id", existing.ID),
				zap.String("item_id", item.ID),
				zap.String("skill", item.TargetSkill),
			)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// CompleteItem は学習アイテムの進捗を 100 にします。
func (s *Service) CompleteItem(ctx context.Context, in CompleteItemInput) (*Recommendation, error) {
	return s.UpdateItemProgress(ctx, UpdateItemProgressInput{
		RecommendationID: in.RecommendationID,
		ItemID:           in.ItemID,
		Progress:         maxProgress,
	})
}

// Reset はレコメンデーションを削除します。
func (s *Service) Reset(ctx context.Context, in ResetInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	}); err != nil {
		return err
	}

	s.logger.Info("recommendation reset", zap.String("recommendation_id", in.ID))
	return nil
}

func (s *Service) transition(ctx context.Context, id string, to Status) (*Recommendation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Recommendation
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}

		from := existing.Status
		if err := existing.Transition(to, s.clock.Now()); err != nil {
			return fmt.Errorf("%s -> %s: %w", from, to, err)
		}

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result

		s.logger.Info("recommendation status changed",
			zap.String("recommendation_id", id),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) resolve(ctx context.Context, employeeID, roleRef string) (*user.User, *role.Role, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, nil, ErrInvalidEmployeeID
	}
	if strings.TrimSpace(roleRef) == "" {
		return nil, nil, ErrInvalidRole
	}

	u, err := s.users.GetUser(ctx, user.GetUserInput{ID: strings.TrimSpace(employeeID)})
	if err != nil {
		return nil, nil, err
	}

	r, err := s.roles.ResolveRole(ctx, roleRef)
	if err != nil {
		return nil, nil, err
	}

	return u, r, nil
}

// linkCourses はコース種別の学習アイテムに研修カタログ上の入門コースを紐付けます。
func (s *Service) linkCourses(ctx context.Context, rec *Recommendation) error {
	if s.courses == nil {
		return nil
	}

	for i := range rec.LearningPath {
		item := &rec.LearningPath[i]
		if item.Type != analysis.ActivityCourse {
			continue
		}
		c, err := s.courses.FindEntryCourse(ctx, item.TargetSkill)
		if err != nil {
			return fmt.Errorf("link course for %s: %w", item.TargetSkill, err)
		}
		if c != nil {
			item.CourseID = c.ID
		}
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
