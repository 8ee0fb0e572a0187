package skill

import (
	"errors"
	"testing"
	"time"
)

func TestNewProficiency_LevelBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, level := range []int{MinLevel, 3, MaxLevel} {
		p, err := NewProficiency(level, true, now)
		if err != nil {
			t.Fatalf("level %d: unexpected error %v", level, err)
		}
		if p.Level != level || !p.Verified || !p.LastUpdated.Equal(now) {
			t.Fatalf("unexpected proficiency %+v", p)
		}
	}

	for _, level := range []int{0, -1, 6} {
		if _, err := NewProficiency(level, false, now); !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("level %d: expected ErrInvalidLevel, got %v", level, err)
		}
	}
}

func TestNewRequirement_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewRequirement(4, 1, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewRequirement(3, 0, false); err != nil {
		t.Fatalf("zero weight should be accepted: %v", err)
	}
	if _, err := NewRequirement(6, 1, false); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := NewRequirement(2, -0.1, false); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestNormalizeRequirements_TrimsNames(t *testing.T) {
	t.Parallel()

	out, err := NormalizeRequirements(map[string]Requirement{
		"  Go ": {MinimumLevel: 3, Weight: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out["Go"]; !ok {
		t.Fatalf("expected trimmed key, got %v", out)
	}

	if _, err := NormalizeRequirements(map[string]Requirement{" ": {MinimumLevel: 1}}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestNormalizeProficiencies_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := NormalizeProficiencies(map[string]Proficiency{"SQL": {Level: 9}})
	if !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestNormalize_RejectsNamesThatCollideAfterTrimming(t *testing.T) {
	t.Parallel()

	// 複数回実行してもマップの走査順に依存せず同じ結果になること
	for i := 0; i < 20; i++ {
		_, err := NormalizeRequirements(map[string]Requirement{
			"Go":   {MinimumLevel: 3, Weight: 1},
			" Go ": {MinimumLevel: 5, Weight: 2},
		})
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName for requirements, got %v", err)
		}

		_, err = NormalizeProficiencies(map[string]Proficiency{
			"SQL":  {Level: 2},
			"SQL ": {Level: 4},
		})
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName for proficiencies, got %v", err)
		}
	}

	out, err := NormalizeProficiencies(map[string]Proficiency{"Go": {Level: 2}, "go": {Level: 4}})
	if err != nil {
		t.Fatalf("case-distinct names should be kept, got %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected two skills, got %v", out)
	}
}
