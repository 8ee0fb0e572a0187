package course

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

type fakeCourseRepo struct {
	courses []*Course
	seq     int
}

func (r *fakeCourseRepo) Create(_ context.Context, c *Course) (*Course, error) {
	r.seq++
	stored := *c
	stored.ID = "course-" + strconv.Itoa(r.seq)
	r.courses = append(r.courses, &stored)
	out := stored
	return &out, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.courses {
		if c.ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return ErrCourseNotFound
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id string) (*Course, error) {
	for _, c := range r.courses {
		if c.ID == id {
			out := *c
			return &out, nil
		}
	}
	return nil, ErrCourseNotFound
}

func (r *fakeCourseRepo) List(_ context.Context, filter ListCoursesFilter) ([]*Course, string, error) {
	var out []*Course
	for _, c := range r.courses {
		if filter.Skill != "" && !strings.EqualFold(c.Skill, filter.Skill) {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	if filter.Offset > len(out) {
		return []*Course{}, "", nil
	}
	end := filter.Offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	var next string
	if end < len(out) {
		next = strconv.Itoa(end)
	}
	return out[filter.Offset:end], next, nil
}

func TestService_CreateCourse_DefaultsProvider(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeCourseRepo{}, stubClock{now: time.Now()})

	created, err := svc.CreateCourse(context.Background(), CreateCourseInput{
		Title:         "Go Basics",
		Skill:         " Go ",
		Level:         1,
		DurationWeeks: 4,
	})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if created.Provider != DefaultProvider || created.Skill != "Go" {
		t.Fatalf("unexpected course %+v", created)
	}
}

func TestService_CreateCourse_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeCourseRepo{}, nil)

	if _, err := svc.CreateCourse(context.Background(), CreateCourseInput{Title: "x", Skill: "Go", Level: 6, DurationWeeks: 1}); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := svc.CreateCourse(context.Background(), CreateCourseInput{Title: "x", Skill: "Go", Level: 1}); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := svc.CreateCourse(context.Background(), CreateCourseInput{Skill: "Go", Level: 1, DurationWeeks: 1}); !errors.Is(err, ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
}

func TestService_FindEntryCourse_PicksLowestLevel(t *testing.T) {
	t.Parallel()

	repo := &fakeCourseRepo{}
	svc := NewService(repo, nil)

	for _, level := range []int{3, 1, 2} {
		if _, err := svc.CreateCourse(context.Background(), CreateCourseInput{
			Title: "SQL L" + strconv.Itoa(level), Skill: "SQL", Level: level, DurationWeeks: 2,
		}); err != nil {
			t.Fatalf("CreateCourse error: %v", err)
		}
	}

	entry, err := svc.FindEntryCourse(context.Background(), "sql")
	if err != nil {
		t.Fatalf("FindEntryCourse returned error: %v", err)
	}
	if entry == nil || entry.Level != 1 {
		t.Fatalf("expected level 1 course, got %+v", entry)
	}

	none, err := svc.FindEntryCourse(context.Background(), "Rust")
	if err != nil || none != nil {
		t.Fatalf("expected no course, got %+v, %v", none, err)
	}
}

func TestService_ListCourses_InvalidToken(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeCourseRepo{}, nil)
	if _, err := svc.ListCourses(context.Background(), ListCoursesInput{PageToken: "x"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}
