package role

import (
	"strings"
	"time"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
)

// Role は目標ロールのエンティティです。
type Role struct {
	ID              string                       `json:"id"`
	Title           string                       `json:"title"`
	Department      string                       `json:"department"`
	RequiredSkills  map[string]skill.Requirement `json:"requiredSkills"`
	ExperienceYears float64                      `json:"experience"`
	Education       []string                     `json:"education"`
	CreatedAt       time.Time                    `json:"createdAt"`
	UpdatedAt       time.Time                    `json:"updatedAt"`
}

// Params は Role 生成時に必要な値です。
type Params struct {
	Title           string
	Department      string
	RequiredSkills  map[string]skill.Requirement
	ExperienceYears float64
	Education       []string
}

// New は入力を検証して Role を生成します。
func New(p Params, now time.Time) (*Role, error) {
	title, err := normalizeTitle(p.Title)
	if err != nil {
		return nil, err
	}

	if p.ExperienceYears < 0 {
		return nil, ErrInvalidExperience
	}

	required, err := skill.NormalizeRequirements(p.RequiredSkills)
	if err != nil {
		return nil, err
	}

	return &Role{
		Title:           title,
		Department:      strings.TrimSpace(p.Department),
		RequiredSkills:  required,
		ExperienceYears: p.ExperienceYears,
		Education:       normalizeEducation(p.Education),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Clone は要求スキルと学歴要件を含めたディープコピーを返します。
func (r *Role) Clone() *Role {
	if r == nil {
		return nil
	}
	c := *r
	if r.RequiredSkills != nil {
		c.RequiredSkills = make(map[string]skill.Requirement, len(r.RequiredSkills))
		for k, v := range r.RequiredSkills {
			c.RequiredSkills[k] = v
		}
	}
	if r.Education != nil {
		c.Education = append([]string(nil), r.Education...)
	}
	return &c
}

func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrInvalidTitle
	}
	return title, nil
}

func normalizeEducation(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
