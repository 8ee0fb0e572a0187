package course

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
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
	// DefaultProvider は提供元が未指定のコースに用いる社内研修名です。
	DefaultProvider = "Internal Training Program"
)

var validate = validator.New()

// Service は研修カタログのユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase はコースユースケースの公開インターフェースです。
type UseCase interface {
	CreateCourse(ctx context.Context, in CreateCourseInput) (*Course, error)
	GetCourse(ctx context.Context, in GetCourseInput) (*Course, error)
	ListCourses(ctx context.Context, in ListCoursesInput) (*ListCoursesResult, error)
	DeleteCourse(ctx context.Context, in DeleteCourseInput) error
	FindEntryCourse(ctx context.Context, skillName string) (*Course, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// CreateCourseInput はコース作成時の入力です。
type CreateCourseInput struct {
	Title         string
	Skill         string
	Provider      string
	Level         int
	DurationWeeks int
	Description   string
}

// GetCourseInput はコース取得時の入力です。
type GetCourseInput struct {
	ID string
}

// DeleteCourseInput はコース削除時の入力です。
type DeleteCourseInput struct {
	ID string
}

// ListCoursesInput は一覧取得時の入力です。
type ListCoursesInput struct {
	Skill     string
	PageSize  int
	PageToken string
}

// ListCoursesResult は一覧取得結果を表します。
type ListCoursesResult struct {
	Courses       []*Course
	NextPageToken string
}

// CreateCourse はコースを登録します。
func (s *Service) CreateCourse(ctx context.Context, in CreateCourseInput) (*Course, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	skillName, err := skill.NormalizeName(in.Skill)
	if err != nil {
		return nil, err
	}

	provider := strings.TrimSpace(in.Provider)
	if provider == "" {
		provider = DefaultProvider
	}

	now := s.clock.Now()
	c := &Course{
		Title:         title,
		Skill:         skillName,
		Provider:      provider,
		Level:         in.Level,
		DurationWeeks: in.DurationWeeks,
		Description:   strings.TrimSpace(in.Description),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := check(c); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, c)
}

// GetCourse はコースを取得します。
func (s *Service) GetCourse(ctx context.Context, in GetCourseInput) (*Course, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, in.ID)
}

// DeleteCourse はコースを削除します。
func (s *Service) DeleteCourse(ctx context.Context, in DeleteCourseInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.Delete(ctx, in.ID)
}

// ListCourses はコースの一覧を取得します。
func (s *Service) ListCourses(ctx context.Context, in ListCoursesInput) (*ListCoursesResult, error) {
	limit := in.PageSize
	if limit <= 0 {
		limit = defaultListPageSize
	}
	if limit > maxListPageSize {
		return nil, ErrInvalidPageSize
	}

	offset := 0
	if token := strings.TrimSpace(in.PageToken); token != "" {
		parsed, err := strconv.Atoi(token)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidPageToken
		}
		offset = parsed
	}

	courses, next, err := s.repo.List(ctx, ListCoursesFilter{
		Skill:  strings.TrimSpace(in.Skill),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	return &ListCoursesResult{Courses: courses, NextPageToken: next}, nil
}

// FindEntryCourse はスキルに対応する最も基礎的なコースを返します。該当がなければ nil を返します。
func (s *Service) FindEntryCourse(ctx context.Context, skillName string) (*Course, error) {
	name := strings.TrimSpace(skillName)
	if name == "" {
		return nil, nil
	}

	courses, _, err := s.repo.List(ctx, ListCoursesFilter{Skill: name, Limit: maxListPageSize})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, nil
	}

	sort.SliceStable(courses, func(i, j int) bool {
		if courses[i].Level != courses[j].Level {
			return courses[i].Level < courses[j].Level
		}
		return courses[i].ID < courses[j].ID
	})
	return courses[0], nil
}

func check(c *Course) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Level":
			return ErrInvalidLevel
		case "DurationWeeks":
			return ErrInvalidDuration
		}
	}
	return err
}
