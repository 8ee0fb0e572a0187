package analysis

import (
	"math"
	"testing"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGaps_CriticalOverridesSizing(t *testing.T) {
	t.Parallel()

	current := map[string]skill.Proficiency{"JavaScript": {Level: 2}}
	required := map[string]skill.Requirement{"JavaScript": {MinimumLevel: 4, Weight: 1, Critical: true}}

	gaps := ComputeGaps(current, required)
	require.Contains(t, gaps, "JavaScript")

	g := gaps["JavaScript"]
	assert.Equal(t, 2, g.CurrentLevel)
	assert.Equal(t, 4, g.RequiredLevel)
	assert.Equal(t, 2, g.Gap)
	assert.Equal(t, PriorityHigh, g.Priority)
	assert.True(t, g.Critical)

	assert.Equal(t, 50, SkillsMatch(current, required))
}

func TestComputeGaps_MissingSkillTreatedAsLevelZero(t *testing.T) {
	t.Parallel()

	required := map[string]skill.Requirement{"Leadership": {MinimumLevel: 3, Weight: 0.5}}

	gaps := ComputeGaps(nil, required)
	g := gaps["Leadership"]
	assert.Equal(t, 0, g.CurrentLevel)
	assert.Equal(t, 3, g.Gap)
	assert.Equal(t, PriorityHigh, g.Priority)

	assert.Equal(t, 0, SkillsMatch(nil, required))
}

func TestComputeGaps_MetRequirementsAreOmitted(t *testing.T) {
	t.Parallel()

	current := map[string]skill.Proficiency{"SQL": {Level: 4}, "Go": {Level: 3}}
	required := map[string]skill.Requirement{
		"SQL": {MinimumLevel: 4, Weight: 1},
		"Go":  {MinimumLevel: 2, Weight: 1},
	}

	assert.Empty(t, ComputeGaps(current, required))
	assert.Equal(t, 100, SkillsMatch(current, required))
}

func TestPriorityFor_Policy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		gap      int
		weight   float64
		critical bool
		want     Priority
	}{
		{1, 0.5, true, PriorityHigh},
		{3, 0.1, false, PriorityHigh},
		{4, 1.0, false, PriorityHigh},
		{2, 0.1, false, PriorityMedium},
		{1, 0.81, false, PriorityMedium},
		{1, 0.8, false, PriorityLow},
		{1, 0.0, false, PriorityLow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PriorityFor(tc.gap, tc.weight, tc.critical), "gap=%d weight=%v critical=%v", tc.gap, tc.weight, tc.critical)
	}
}

func TestPriorityFor_MonotonicInGap(t *testing.T) {
	t.Parallel()

	for _, weight := range []float64{0, 0.3, 0.8} {
		prev := 0
		for gap := 1; gap <= 5; gap++ {
			rank := PriorityFor(gap, weight, false).Rank()
			assert.GreaterOrEqual(t, rank, prev, "weight=%v gap=%d", weight, gap)
			prev = rank
		}
	}
}

func TestSkillsMatch_EmptyRequirementsIsFull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, SkillsMatch(map[string]skill.Proficiency{"Go": {Level: 1}}, nil))
	assert.Equal(t, 100, SkillsMatch(nil, map[string]skill.Requirement{}))
}

func TestSkillsMatch_WeightedPartialCredit(t *testing.T) {
	t.Parallel()

	current := map[string]skill.Proficiency{"Go": {Level: 5}, "SQL": {Level: 1}}
	required := map[string]skill.Requirement{
		"Go":  {MinimumLevel: 4, Weight: 3},
		"SQL": {MinimumLevel: 4, Weight: 1},
	}
	// (3 + 1×1/4) / 4 = 0.8125
	assert.Equal(t, 81, SkillsMatch(current, required))
}

func TestSkillsMatch_ZeroWeightsFallBackToUnweighted(t *testing.T) {
	t.Parallel()

	current := map[string]skill.Proficiency{"Go": {Level: 2}}
	required := map[string]skill.Requirement{
		"Go":  {MinimumLevel: 2},
		"SQL": {MinimumLevel: 2},
	}
	assert.Equal(t, 50, SkillsMatch(current, required))
}

func TestExperienceMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, ExperienceMatch(0, 0))
	assert.Equal(t, 50, ExperienceMatch(2, 4))
	assert.Equal(t, 100, ExperienceMatch(10, 4))
	assert.Equal(t, 33, ExperienceMatch(1, 3))
}

func TestEducationMatch_SubstringEitherDirection(t *testing.T) {
	t.Parallel()

	userEdu := []string{"BSc Computer Science", "MBA"}
	assert.Equal(t, 100, EducationMatch(userEdu, nil))
	assert.Equal(t, 100, EducationMatch(userEdu, []string{"computer science"}))
	assert.Equal(t, 100, EducationMatch(userEdu, []string{"Executive MBA Program"}))
	assert.Equal(t, 50, EducationMatch(userEdu, []string{"Computer Science", "PhD"}))
	assert.Equal(t, 0, EducationMatch(nil, []string{"PhD"}))
}

func TestScoreMatch_OverallRecomputesFromSubScores(t *testing.T) {
	t.Parallel()

	u := &user.User{
		Skills:          map[string]skill.Proficiency{"JavaScript": {Level: 2}},
		ExperienceYears: 3,
		Education:       []string{"BSc Computer Science"},
		Performance:     3,
		Potential:       4,
	}
	r := &role.Role{
		RequiredSkills:  map[string]skill.Requirement{"JavaScript": {MinimumLevel: 4, Weight: 1, Critical: true}},
		ExperienceYears: 3,
		Education:       []string{"Computer Science"},
	}

	m := ScoreMatch(u, r)
	assert.Equal(t, 50, m.SkillsMatch)
	assert.Equal(t, 100, m.ExperienceMatch)
	assert.Equal(t, 100, m.EducationMatch)
	assert.Equal(t, 75, m.OverallMatch)
	assert.Equal(t, 71, m.Readiness)

	recomputed := int(math.Round(float64(m.SkillsMatch)*0.5 + float64(m.ExperienceMatch)*0.3 + float64(m.EducationMatch)*0.2))
	assert.Equal(t, recomputed, OverallMatch(m.SkillsMatch, m.ExperienceMatch, m.EducationMatch))
}

func TestOverallMatch_MatchesWeightedFormulaAcrossGrid(t *testing.T) {
	t.Parallel()

	for s := 0; s <= 100; s += 7 {
		for e := 0; e <= 100; e += 11 {
			for d := 0; d <= 100; d += 25 {
				want := math.Round(float64(s)*0.5 + float64(e)*0.3 + float64(d)*0.2)
				assert.InDelta(t, want, float64(OverallMatch(s, e, d)), 1, "s=%d e=%d d=%d", s, e, d)
			}
		}
	}
}

func TestEstimateTimeline(t *testing.T) {
	t.Parallel()

	gaps := map[string]Gap{
		"A": {Skill: "A", Gap: 2, Priority: PriorityHigh},
		"B": {Skill: "B", Gap: 2, Priority: PriorityMedium},
	}
	// 6 + floor(2/2)*2 + 1*2 + floor(2)*2
	assert.Equal(t, 14, EstimateTimeline(gaps))

	assert.Equal(t, 6, EstimateTimeline(nil))

	many := map[string]Gap{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		many[name] = Gap{Skill: name, Gap: 4, Priority: PriorityHigh}
	}
	assert.Equal(t, 24, EstimateTimeline(many))
}

func TestEstimateConfidence_ClampsAtUpperBound(t *testing.T) {
	t.Parallel()

	u := &user.User{
		Skills:          map[string]skill.Proficiency{"Go": {Level: 5}},
		ExperienceYears: 10,
	}
	r := &role.Role{
		RequiredSkills:  map[string]skill.Requirement{"Go": {MinimumLevel: 3, Weight: 1}},
		ExperienceYears: 5,
	}

	c := EstimateConfidence(u, r, ComputeGaps(u.Skills, r.RequiredSkills))
	assert.InDelta(t, 0.95, c, 1e-9)
	assert.LessOrEqual(t, c, 0.95)
}

func TestEstimateConfidence_PartialFit(t *testing.T) {
	t.Parallel()

	u := &user.User{ExperienceYears: 0}
	r := &role.Role{
		RequiredSkills:  map[string]skill.Requirement{"Go": {MinimumLevel: 4, Weight: 1}},
		ExperienceYears: 4,
	}

	// 0.5 + 0 + 0 + 0.2×(1 − 4/4)
	assert.InDelta(t, 0.5, EstimateConfidence(u, r, ComputeGaps(u.Skills, r.RequiredSkills)), 1e-9)
}

func TestEstimateConfidence_ZeroWeightsFallBackToUnweighted(t *testing.T) {
	t.Parallel()

	u := &user.User{ExperienceYears: 0}
	r := &role.Role{
		RequiredSkills: map[string]skill.Requirement{
			"Go":  {MinimumLevel: 4, Weight: 0},
			"SQL": {MinimumLevel: 2, Weight: 0},
		},
		ExperienceYears: 4,
	}

	// 最大ギャップなので 0.5 + 0 + 0 + 0.2×(1 − 6/6)
	assert.InDelta(t, 0.5, EstimateConfidence(u, r, ComputeGaps(u.Skills, r.RequiredSkills)), 1e-9)

	u.Skills = map[string]skill.Proficiency{"Go": {Level: 4}}
	// Go を満たすと 0.5 + 0 + 0.3×1/2 + 0.2×(1 − 2/6)
	assert.InDelta(t, 0.5+0.15+0.2*(1-2.0/6.0), EstimateConfidence(u, r, ComputeGaps(u.Skills, r.RequiredSkills)), 1e-9)
}

func TestSynthesize_OrderingAndPlacement(t *testing.T) {
	t.Parallel()

	gaps := map[string]Gap{
		"Leadership": {Skill: "Leadership", Gap: 3, Weight: 0.5, Priority: PriorityHigh},
		"JavaScript": {Skill: "JavaScript", Gap: 2, Weight: 1, Priority: PriorityHigh, Critical: true},
		"SQL":        {Skill: "SQL", Gap: 1, Weight: 0.9, Priority: PriorityMedium},
	}
	r := &role.Role{ID: "role-1", Title: "Tech Lead"}

	items := Synthesize(gaps, r)
	require.Len(t, items, 7)

	type placement struct {
		skill  string
		kind   ActivityType
		month  int
		impact int
	}
	want := []placement{
		{"JavaScript", ActivityCourse, 1, 2},
		{"JavaScript", ActivityProject, 2, 1},
		{"JavaScript", ActivityMentoring, 3, 0},
		{"Leadership", ActivityCourse, 1, 2},
		{"Leadership", ActivityProject, 2, 2},
		{"Leadership", ActivityMentoring, 3, 1},
		{"SQL", ActivityCourse, 2, 1},
	}
	for i, w := range want {
		got := items[i]
		assert.Equal(t, w.skill, got.TargetSkill, "item %d", i)
		assert.Equal(t, w.kind, got.Type, "item %d", i)
		assert.Equal(t, w.month, got.Month, "item %d", i)
		assert.Equal(t, w.impact, got.SkillImpact, "item %d", i)
	}

	assert.Equal(t, "Frontend Masters", items[0].Provider)
	assert.Equal(t, DefaultProvider, items[1].Provider)
	assert.Equal(t, "DataCamp", items[6].Provider)
	assert.Contains(t, items[1].Title, "Tech Lead")
}

func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	gaps := map[string]Gap{}
	for i, name := range []string{"Go", "SQL", "Python", "Leadership", "Communication", "Negotiation"} {
		gaps[name] = Gap{Skill: name, Gap: i%3 + 1, Weight: 0.5, Priority: PriorityFor(i%3+1, 0.5, false)}
	}
	r := &role.Role{ID: "role-9", Title: "Manager"}

	first := Synthesize(gaps, r)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Synthesize(gaps, r))
	}

	ids := map[string]struct{}{}
	for _, item := range first {
		_, dup := ids[item.ID]
		assert.False(t, dup, "duplicate id %s", item.ID)
		ids[item.ID] = struct{}{}
	}
}

func TestProviderFor_DefaultsToInternalProgram(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Coursera", ProviderFor(" python "))
	assert.Equal(t, DefaultProvider, ProviderFor("Underwater Basket Weaving"))
}

func TestAnalyze_EndToEnd(t *testing.T) {
	t.Parallel()

	u := &user.User{
		Skills:          map[string]skill.Proficiency{"JavaScript": {Level: 2}},
		ExperienceYears: 2,
		Performance:     4,
		Potential:       4,
	}
	r := &role.Role{
		ID: "role-2",
		RequiredSkills: map[string]skill.Requirement{
			"JavaScript": {MinimumLevel: 4, Weight: 1, Critical: true},
			"Leadership": {MinimumLevel: 3, Weight: 0.5},
		},
		ExperienceYears: 4,
	}

	res := Analyze(u, r)
	assert.Len(t, res.Gaps, 2)
	assert.NotEmpty(t, res.Path)
	assert.GreaterOrEqual(t, res.TimelineMonths, 3)
	assert.LessOrEqual(t, res.TimelineMonths, 24)
	assert.GreaterOrEqual(t, res.Confidence, 0.1)
	assert.LessOrEqual(t, res.Confidence, 0.95)
}
