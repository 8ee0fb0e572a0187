// Package sample はデモ用の社員・ロール・研修コースを決定的に生成します。
package sample

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

var (
	firstNames = []string{"Aiko", "Ben", "Carla", "Daichi", "Elena", "Farid", "Grace", "Hiro", "Ines", "Jonas", "Keiko", "Liam", "Mina", "Noah", "Olivia", "Priya"}
	lastNames  = []string{"Sato", "Miller", "Garcia", "Tanaka", "Rossi", "Khan", "Lee", "Suzuki", "Silva", "Weber", "Ito", "Brown", "Park", "Novak", "Costa", "Patel"}
	degrees    = []string{"BSc Computer Science", "BA Business Administration", "MSc Data Science", "MBA", "BEng Software Engineering", "BA Communication"}
)

// departmentSkills は部署ごとに付与しうるスキルです。
var departmentSkills = map[string][]string{
	"Engineering": {"JavaScript", "TypeScript", "Go", "Python", "SQL", "Cloud Computing"},
	"Data":        {"Python", "SQL", "Data Analysis", "Machine Learning", "Communication"},
	"Product":     {"Project Management", "Communication", "Data Analysis", "Negotiation"},
	"Management":  {"Leadership", "Communication", "Project Management", "Negotiation"},
}

var departments = []string{"Engineering", "Data", "Product", "Management"}

// Generator は seed から同じデータを再現します。
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator は Generator を生成します。
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Users は n 人分の社員作成入力を返します。メールアドレスは連番で一意です。
func (g *Generator) Users(n int) []user.CreateUserInput {
	out := make([]user.CreateUserInput, 0, n)
	for i := 0; i < n; i++ {
		first := pick(g.rnd, firstNames)
		last := pick(g.rnd, lastNames)
		dept := pick(g.rnd, departments)

		skills := make(map[string]skill.Proficiency)
		for _, name := range departmentSkills[dept] {
			if g.rnd.IntN(4) == 0 {
				continue
			}
			skills[name] = skill.Proficiency{
				Level:    skill.MinLevel + g.rnd.IntN(skill.MaxLevel),
				Verified: g.rnd.IntN(2) == 0,
			}
		}

		out = append(out, user.CreateUserInput{
			Email:           fmt.Sprintf("%s.%s.%03d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
			Name:            first + " " + last,
			Department:      dept,
			Skills:          skills,
			Performance:     1 + g.rnd.IntN(5),
			Potential:       1 + g.rnd.IntN(5),
			ExperienceYears: float64(g.rnd.IntN(21)) / 2,
			Education:       []string{pick(g.rnd, degrees)},
		})
	}
	return out
}

// Roles は部署ごとの目標ロールを返します。内容は seed に依存しません。
func (g *Generator) Roles() []role.CreateRoleInput {
	return []role.CreateRoleInput{
		{
			Title:      "Senior Frontend Engineer",
			Department: "Engineering",
			RequiredSkills: map[string]skill.Requirement{
				"JavaScript":    {MinimumLevel: 4, Weight: 1, Critical: true},
				"TypeScript":    {MinimumLevel: 3, Weight: 0.8},
				"Communication": {MinimumLevel: 3, Weight: 0.4},
			},
			ExperienceYears: 5,
			Education:       []string{"Computer Science"},
		},
		{
			Title:      "Staff Backend Engineer",
			Department: "Engineering",
			RequiredSkills: map[string]skill.Requirement{
				"Go":              {MinimumLevel: 4, Weight: 1, Critical: true},
				"SQL":             {MinimumLevel: 4, Weight: 0.9},
				"Cloud Computing": {MinimumLevel: 3, Weight: 0.7},
				"Leadership":      {MinimumLevel: 2, Weight: 0.3},
			},
			ExperienceYears: 8,
			Education:       []string{"Computer Science", "Software Engineering"},
		},
		{
			Title:      "Data Scientist",
			Department: "Data",
			RequiredSkills: map[string]skill.Requirement{
				"Python":           {MinimumLevel: 4, Weight: 1},
				"Machine Learning": {MinimumLevel: 3, Weight: 0.9, Critical: true},
				"Data Analysis":    {MinimumLevel: 4, Weight: 0.8},
			},
			ExperienceYears: 3,
			Education:       []string{"Data Science"},
		},
		{
			Title:      "Product Manager",
			Department: "Product",
			RequiredSkills: map[string]skill.Requirement{
				"Project Management": {MinimumLevel: 4, Weight: 1, Critical: true},
				"Communication":      {MinimumLevel: 4, Weight: 0.9},
				"Negotiation":        {MinimumLevel: 3, Weight: 0.6},
			},
			ExperienceYears: 4,
			Education:       []string{"Business Administration"},
		},
		{
			Title:      "Engineering Manager",
			Department: "Management",
			RequiredSkills: map[string]skill.Requirement{
				"Leadership":         {MinimumLevel: 4, Weight: 1, Critical: true},
				"Communication":      {MinimumLevel: 4, Weight: 0.8},
				"Project Management": {MinimumLevel: 3, Weight: 0.6},
			},
			ExperienceYears: 7,
			Education:       []string{"MBA"},
		},
	}
}

// Courses はスキルごとに入門・応用の 2 コースを返します。
func (g *Generator) Courses() []course.CreateCourseInput {
	seen := make(map[string]struct{})
	var out []course.CreateCourseInput
	for _, dept := range departments {
		for _, name := range departmentSkills[dept] {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}

			out = append(out,
				course.CreateCourseInput{
					Title:         name + " Fundamentals",
					Skill:         name,
					Level:         1,
					DurationWeeks: 4,
					Description:   "Core concepts and hands-on exercises for " + name + ".",
				},
				course.CreateCourseInput{
					Title:         "Advanced " + name,
					Skill:         name,
					Level:         3 + g.rnd.IntN(2),
					DurationWeeks: 6 + g.rnd.IntN(5),
					Description:   "Deep dive into " + name + " for experienced practitioners.",
				},
			)
		}
	}
	return out
}

// Counts は Seed が登録した件数です。
type Counts struct {
	Users   int
	Roles   int
	Courses int
}

// Seed は生成したデータを各ユースケース経由で登録します。
// 既に存在するメールアドレスやロール名、コースが登録済みのスキルは読み飛ばします。
func Seed(ctx context.Context, g *Generator, users user.UseCase, roles role.UseCase, courses course.UseCase, userCount int) (Counts, error) {
	var counts Counts

	for _, in := range g.Roles() {
		if _, err := roles.CreateRole(ctx, in); err != nil {
			if isDuplicate(err) {
				continue
			}
			return counts, fmt.Errorf("seed role %q: %w", in.Title, err)
		}
		counts.Roles++
	}

	stocked := make(map[string]bool)
	for _, in := range g.Courses() {
		has, ok := stocked[in.Skill]
		if !ok {
			existing, err := courses.FindEntryCourse(ctx, in.Skill)
			if err != nil {
				return counts, fmt.Errorf("seed course %q: %w", in.Title, err)
			}
			has = existing != nil
			stocked[in.Skill] = has
		}
		if has {
			continue
		}
		if _, err := courses.CreateCourse(ctx, in); err != nil {
			return counts, fmt.Errorf("seed course %q: %w", in.Title, err)
		}
		counts.Courses++
	}

	for _, in := range g.Users(userCount) {
		if _, err := users.CreateUser(ctx, in); err != nil {
			if isDuplicate(err) {
				continue
			}
			return counts, fmt.Errorf("seed user %q: %w", in.Email, err)
		}
		counts.Users++
	}

	return counts, nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, user.ErrEmailAlreadyExists) || errors.Is(err, role.ErrTitleAlreadyExists)
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}
