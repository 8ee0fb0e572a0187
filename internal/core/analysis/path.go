package analysis

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
)

// ActivityType は学習アクティビティの種類です。
type ActivityType string

const (
	ActivityCourse    ActivityType = "course"
	ActivityProject   ActivityType = "project"
	ActivityMentoring ActivityType = "mentoring"
)

// DefaultProvider は提供元テーブルに存在しないスキルに割り当てる提供元です。
const DefaultProvider = "Internal Training Program"

const maxSkillImpact = 2

var activityDurationWeeks = map[ActivityType]int{
	ActivityCourse:    4,
	ActivityProject:   6,
	ActivityMentoring: 8,
}

// activityStage は各アクティビティが何段階目にあたるかを表します。
var activityStage = map[ActivityType]int{
	ActivityCourse:    0,
	ActivityProject:   1,
	ActivityMentoring: 2,
}

// providers はスキル名(小文字)から研修提供元への静的な対応表です。
var providers = map[string]string{
	"javascript":         "Frontend Masters",
	"typescript":         "Frontend Masters",
	"python":             "Coursera",
	"machine learning":   "Coursera",
	"data analysis":      "DataCamp",
	"sql":                "DataCamp",
	"cloud computing":    "AWS Training and Certification",
	"go":                 "Udemy",
	"leadership":         "LinkedIn Learning",
	"communication":      "Toastmasters International",
	"project management": "Project Management Institute",
	"negotiation":        "Harvard Online",
}

// Activity は学習パスを構成するひとつのアクティビティです。
type Activity struct {
	ID            string       `json:"id"`
	Type          ActivityType `json:"type"`
	Title         string       `json:"title"`
	Provider      string       `json:"provider"`
	DurationWeeks int          `json:"durationWeeks"`
	TargetSkill   string       `json:"targetSkill"`
	Priority      Priority     `json:"priority"`
	Month         int          `json:"month"`
	SkillImpact   int          `json:"skillImpact"`
}

// ProviderFor はスキルに対応する研修提供元を返します。
func ProviderFor(skillName string) string {
	if p, ok := providers[strings.ToLower(strings.TrimSpace(skillName))]; ok {
		return p
	}
	return DefaultProvider
}

// Synthesize はギャップから学習アクティビティの順序付きリストを生成します。
//
// ギャップは OrderGaps の順に処理され、i 番目 (0 始まり) のギャップの基準月は i/2+1 です。
// gap ≥ 1 でコース、gap ≥ 2 でプロジェクト (基準月+1)、gap ≥ 3 またはクリティカルでメンタリング (基準月+2) を出力します。
func Synthesize(gaps map[string]Gap, r *role.Role) []Activity {
	var roleKey, roleTitle string
	if r != nil {
		roleKey = r.ID
		roleTitle = r.Title
	}

	ordered := OrderGaps(gaps)
	activities := make([]Activity, 0, len(ordered)*2)
	for i, g := range ordered {
		baseMonth := i/2 + 1

		if g.Gap >= 1 {
			activities = append(activities, newActivity(roleKey, roleTitle, g, ActivityCourse, baseMonth))
		}
		if g.Gap >= 2 {
			activities = append(activities, newActivity(roleKey, roleTitle, g, ActivityProject, baseMonth+1))
		}
		if g.Gap >= 3 || g.Critical {
			activities = append(activities, newActivity(roleKey, roleTitle, g, ActivityMentoring, baseMonth+2))
		}
	}
	return activities
}

func newActivity(roleKey, roleTitle string, g Gap, kind ActivityType, month int) Activity {
	provider := DefaultProvider
	if kind == ActivityCourse {
		provider = ProviderFor(g.Skill)
	}

	return Activity{
		ID:            activityID(roleKey, g.Skill, kind),
		Type:          kind,
		Title:         activityTitle(kind, g.Skill, roleTitle),
		Provider:      provider,
		DurationWeeks: activityDurationWeeks[kind],
		TargetSkill:   g.Skill,
		Priority:      g.Priority,
		Month:         month,
		SkillImpact:   skillImpact(g.Gap, activityStage[kind]),
	}
}

// skillImpact は段階 stage 時点での残りギャップ (gap - stage) を 2 で頭打ちにした値です。
func skillImpact(gap, stage int) int {
	remaining := gap - stage
	if remaining < 0 {
		remaining = 0
	}
	if remaining > maxSkillImpact {
		return maxSkillImpact
	}
	return remaining
}

func activityTitle(kind ActivityType, skillName, roleTitle string) string {
	switch kind {
	case ActivityCourse:
		return fmt.Sprintf("%s Fundamentals", skillName)
	case ActivityProject:
		if roleTitle != "" {
			return fmt.Sprintf("Apply %s in a %s stretch project", skillName, roleTitle)
		}
		return fmt.Sprintf("Apply %s in a stretch project", skillName)
	default:
		return fmt.Sprintf("%s mentoring with a senior practitioner", skillName)
	}
}

// activityID はロール・スキル・種類から UUIDv5 を導出します。同じ入力からは常に同じ ID になります。
func activityID(roleKey, skillName string, kind ActivityType) string {
	name := roleKey + "|" + skillName + "|" + string(kind)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
