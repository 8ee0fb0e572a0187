package recommendation

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/analysis"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

func sampleRecommendation(t *testing.T) *Recommendation {
	t.Helper()

	u := &user.User{
		ID:              "user-1",
		Skills:          map[string]skill.Proficiency{"Go": {Level: 1}},
		ExperienceYears: 1,
		Performance:     3,
		Potential:       3,
	}
	r := &role.Role{
		ID:    "role-1",
		Title: "Backend Engineer",
		RequiredSkills: map[string]skill.Requirement{
			"Go":  {MinimumLevel: 4, Weight: 1, Critical: true},
			"SQL": {MinimumLevel: 2, Weight: 0.9},
		},
		ExperienceYears: 3,
	}

	rec, err := New(u.ID, r, analysis.Analyze(u, r), time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	rec.ID = "rec-1"
	return rec
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	r := &role.Role{ID: "role-1"}
	ok := analysis.Result{TimelineMonths: 6, Confidence: 0.5}
	now := time.Now()

	if _, err := New(" ", r, ok, now); !errors.Is(err, ErrInvalidEmployeeID) {
		t.Fatalf("expected ErrInvalidEmployeeID, got %v", err)
	}
	if _, err := New("user-1", nil, ok, now); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := New("user-1", r, analysis.Result{TimelineMonths: 61, Confidence: 0.5}, now); !errors.Is(err, ErrInvalidTimeline) {
		t.Fatalf("expected ErrInvalidTimeline, got %v", err)
	}
	if _, err := New("user-1", r, analysis.Result{TimelineMonths: 6, Confidence: 1.2}, now); !errors.Is(err, ErrInvalidConfidence) {
		t.Fatalf("expected ErrInvalidConfidence, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	all := []Status{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusAccepted}:     true,
		{StatusPending, StatusInProgress}:   true,
		{StatusAccepted, StatusInProgress}:  true,
		{StatusAccepted, StatusCompleted}:   true,
		{StatusInProgress, StatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			if got := CanTransition(from, to); got != allowed[[2]Status{from, to}] {
				t.Fatalf("CanTransition(%s, %s) = %v", from, to, got)
			}
		}
	}
}

func TestRecommendation_Transition_UnknownStatus(t *testing.T) {
	t.Parallel()

	rec := sampleRecommendation(t)
	if err := rec.Transition(Status("archived"), time.Now()); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if rec.Status != StatusPending {
		t.Fatalf("status must not change on error, got %s", rec.Status)
	}
}

func TestRecommendation_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	rec := sampleRecommendation(t)
	if _, err := rec.SetItemProgress(rec.LearningPath[0].ID, 55, rec.CreatedAt); err != nil {
		t.Fatalf("SetItemProgress returned error: %v", err)
	}
	rec.LearningPath[1].CourseID = "course-1"

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Recommendation
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(rec.SkillGaps, decoded.SkillGaps) {
		t.Fatalf("skill gaps differ: %+v vs %+v", rec.SkillGaps, decoded.SkillGaps)
	}
	if !reflect.DeepEqual(rec.LearningPath, decoded.LearningPath) {
		t.Fatalf("learning path differs: %+v vs %+v", rec.LearningPath, decoded.LearningPath)
	}
	if rec.TimelineMonths != decoded.TimelineMonths || rec.Confidence != decoded.Confidence || rec.Status != decoded.Status {
		t.Fatalf("scalar fields differ: %+v vs %+v", rec, decoded)
	}
}

func TestRecommendation_CloneIsDeep(t *testing.T) {
	t.Parallel()

	rec := sampleRecommendation(t)
	cp := rec.Clone()
	cp.LearningPath[0].Progress = 99
	cp.SkillGaps["Go"] = analysis.Gap{Skill: "Go"}

	if rec.LearningPath[0].Progress != 0 {
		t.Fatalf("clone shares learning path")
	}
	if rec.SkillGaps["Go"].Gap != 3 {
		t.Fatalf("clone shares skill gaps")
	}
}
