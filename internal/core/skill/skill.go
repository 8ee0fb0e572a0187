package skill

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// MinLevel はスキルレベルの下限です。
	MinLevel = 1
	// MaxLevel はスキルレベルの上限です。
	MaxLevel = 5
)

var (
	ErrInvalidName   = errors.New("skill: invalid name")
	ErrDuplicateName = errors.New("skill: duplicate name after trimming")
	ErrInvalidLevel  = errors.New("skill: level must be between 1 and 5")
	ErrInvalidWeight = errors.New("skill: weight must be zero or greater")
)

var validate = validator.New()

// Proficiency はユーザーが保持するスキルの習熟度です。
type Proficiency struct {
	Level       int       `json:"level" validate:"min=1,max=5"`
	Verified    bool      `json:"verified"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Requirement はロールが要求するスキル条件です。
type Requirement struct {
	MinimumLevel int     `json:"minimumLevel" validate:"min=1,max=5"`
	Weight       float64 `json:"weight" validate:"gte=0"`
	Critical     bool    `json:"critical"`
}

// NewProficiency は検証済みの Proficiency を生成します。
func NewProficiency(level int, verified bool, updatedAt time.Time) (Proficiency, error) {
	p := Proficiency{Level: level, Verified: verified, LastUpdated: updatedAt}
	if err := check(p); err != nil {
		return Proficiency{}, err
	}
	return p, nil
}

// NewRequirement は検証済みの Requirement を生成します。
func NewRequirement(minimumLevel int, weight float64, critical bool) (Requirement, error) {
	r := Requirement{MinimumLevel: minimumLevel, Weight: weight, Critical: critical}
	if err := check(r); err != nil {
		return Requirement{}, err
	}
	return r, nil
}

// NormalizeName はスキル名の前後空白を除去します。
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrInvalidName
	}
	return name, nil
}

// NormalizeProficiencies はスキル名を正規化し、各習熟度を検証したコピーを返します。
// 正規化後に同じ名前になるキーがあれば ErrDuplicateName を返します。
func NormalizeProficiencies(in map[string]Proficiency) (map[string]Proficiency, error) {
	out := make(map[string]Proficiency, len(in))
	for rawName, p := range in {
		name, err := NormalizeName(rawName)
		if err != nil {
			return nil, err
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%s: %w", name, ErrDuplicateName)
		}
		if err := check(p); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}

// NormalizeRequirements はスキル名を正規化し、各要求条件を検証したコピーを返します。
// 正規化後に同じ名前になるキーがあれば ErrDuplicateName を返します。
func NormalizeRequirements(in map[string]Requirement) (map[string]Requirement, error) {
	out := make(map[string]Requirement, len(in))
	for rawName, r := range in {
		name, err := NormalizeName(rawName)
		if err != nil {
			return nil, err
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("%s: %w", name, ErrDuplicateName)
		}
		if err := check(r); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = r
	}
	return out, nil
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Level", "MinimumLevel":
			return ErrInvalidLevel
		case "Weight":
			return ErrInvalidWeight
		}
	}
	return err
}
