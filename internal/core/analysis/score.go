package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

// Match はユーザーとロールの適合度です。すべて 0〜100 のパーセンテージです。
type Match struct {
	SkillsMatch     int `json:"skillsMatch"`
	ExperienceMatch int `json:"experienceMatch"`
	EducationMatch  int `json:"educationMatch"`
	OverallMatch    int `json:"overallMatch"`
	Readiness       int `json:"readiness"`
}

// ScoreMatch はユーザーとロールの適合度を算出します。
func ScoreMatch(u *user.User, r *role.Role) Match {
	skills := SkillsMatch(u.Skills, r.RequiredSkills)
	experience := ExperienceMatch(u.ExperienceYears, r.ExperienceYears)
	education := EducationMatch(u.Education, r.Education)

	return Match{
		SkillsMatch:     skills,
		ExperienceMatch: experience,
		EducationMatch:  education,
		OverallMatch:    OverallMatch(skills, experience, education),
		Readiness:       Readiness(skills, experience, education, u.Performance, u.Potential),
	}
}

// SkillsMatch は重み付きの充足率を返します。要求スキルがなければ 100 です。
// 重みの合計が 0 の場合は各スキルを等しく扱います。
func SkillsMatch(current map[string]skill.Proficiency, required map[string]skill.Requirement) int {
	if len(required) == 0 {
		return 100
	}

	names := make([]string, 0, len(required))
	totalWeight := 0.0
	for name, req := range required {
		names = append(names, name)
		totalWeight += req.Weight
	}
	sort.Strings(names)

	unweighted := totalWeight == 0
	if unweighted {
		totalWeight = float64(len(required))
	}

	credit := 0.0
	for _, name := range names {
		req := required[name]
		weight := req.Weight
		if unweighted {
			weight = 1
		}

		level := current[name].Level
		if level >= req.MinimumLevel {
			credit += weight
			continue
		}
		credit += weight * float64(level) / float64(req.MinimumLevel)
	}

	return int(math.Round(credit / totalWeight * 100))
}

// ExperienceMatch は経験年数の充足率を返します。要求が 0 年なら 100 です。
func ExperienceMatch(userYears, requiredYears float64) int {
	return int(math.Round(experienceRatio(userYears, requiredYears) * 100))
}

// EducationMatch はロールの学歴要件のうち、ユーザーの学歴と部分一致するものの割合を返します。
// 比較は大文字小文字を区別せず、どちらの方向の包含でも一致とみなします。要件がなければ 100 です。
func EducationMatch(userEducation, required []string) int {
	if len(required) == 0 {
		return 100
	}

	matched := 0
	for _, req := range required {
		needle := strings.ToLower(strings.TrimSpace(req))
		for _, have := range userEducation {
			hay := strings.ToLower(strings.TrimSpace(have))
			if hay == "" || needle == "" {
				continue
			}
			if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
				matched++
				break
			}
		}
	}

	return int(math.Round(float64(matched) / float64(len(required)) * 100))
}

// OverallMatch は skills×0.5 + experience×0.3 + education×0.2 を四捨五入した値です。
func OverallMatch(skills, experience, education int) int {
	return int(math.Round(float64(5*skills+3*experience+2*education) / 10))
}

// Readiness は昇格準備度です。performance と potential は 1〜5 を ×20 して 0〜100 に換算します。
func Readiness(skills, experience, education, performance, potential int) int {
	// 0.15 × (rating × 20) = 3 × rating
	base := int(math.Round(float64(4*skills+2*experience+education) / 10))
	return base + 3*performance + 3*potential
}

func experienceRatio(userYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		return 1
	}
	return math.Min(userYears/requiredYears, 1)
}
