package user

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
)

// Status はユーザーの状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User はタレントプロフィールを持つユーザーエンティティです。
type User struct {
	ID              string                       `json:"id"`
	Email           string                       `json:"email"`
	Name            string                       `json:"name"`
	Department      string                       `json:"department"`
	Status          Status                       `json:"status"`
	Skills          map[string]skill.Proficiency `json:"skills"`
	Performance     int                          `json:"performance" validate:"min=1,max=5"`
	Potential       int                          `json:"potential" validate:"min=1,max=5"`
	ExperienceYears float64                      `json:"experience" validate:"gte=0"`
	Education       []string                     `json:"education"`
	CreatedAt       time.Time                    `json:"createdAt"`
	UpdatedAt       time.Time                    `json:"updatedAt"`
}

// Params は User 生成時に必要な値です。
type Params struct {
	Email           string
	Name            string
	Department      string
	Skills          map[string]skill.Proficiency
	Performance     int
	Potential       int
	ExperienceYears float64
	Education       []string
}

var validate = validator.New()

// New は入力を正規化・検証して User を生成します。不正な値は補完せずエラーを返します。
func New(p Params, now time.Time) (*User, error) {
	email, err := normalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	skills, err := skill.NormalizeProficiencies(p.Skills)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:           email,
		Name:            name,
		Department:      strings.TrimSpace(p.Department),
		Status:          StatusActive,
		Skills:          skills,
		Performance:     p.Performance,
		Potential:       p.Potential,
		ExperienceYears: p.ExperienceYears,
		Education:       normalizeEducation(p.Education),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Clone はスキルマップと学歴を含めたディープコピーを返します。
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Skills != nil {
		c.Skills = make(map[string]skill.Proficiency, len(u.Skills))
		for k, v := range u.Skills {
			c.Skills[k] = v
		}
	}
	if u.Education != nil {
		c.Education = append([]string(nil), u.Education...)
	}
	return &c
}

func (u *User) validate() error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Performance":
			return ErrInvalidPerformance
		case "Potential":
			return ErrInvalidPotential
		case "ExperienceYears":
			return ErrInvalidExperience
		}
	}
	return err
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
