package analysis

import (
	"sort"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
)

// Priority はギャップの優先度です。
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank は優先度の比較用の序数を返します。未知の値は 0 です。
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid は定義済みの優先度かどうかを返します。
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Gap はひとつのスキルについての現在レベルと要求レベルの差分です。
type Gap struct {
	Skill         string   `json:"skill"`
	CurrentLevel  int      `json:"currentLevel"`
	RequiredLevel int      `json:"requiredLevel"`
	Gap           int      `json:"gap"`
	Priority      Priority `json:"priority"`
	Weight        float64  `json:"weight"`
	Critical      bool     `json:"critical"`
}

// Severity は gap × weight を返します。
func (g Gap) Severity() float64 {
	return float64(g.Gap) * g.Weight
}

// ComputeGaps は要求スキルごとに差分を求めます。
// ユーザーが保持していないスキルはレベル 0 として扱い、要求を満たしているスキルは結果に含めません。
func ComputeGaps(current map[string]skill.Proficiency, required map[string]skill.Requirement) map[string]Gap {
	gaps := make(map[string]Gap, len(required))
	for name, req := range required {
		level := 0
		if p, ok := current[name]; ok {
			level = p.Level
		}

		size := req.MinimumLevel - level
		if size <= 0 {
			continue
		}

		gaps[name] = Gap{
			Skill:         name,
			CurrentLevel:  level,
			RequiredLevel: req.MinimumLevel,
			Gap:           size,
			Priority:      PriorityFor(size, req.Weight, req.Critical),
			Weight:        req.Weight,
			Critical:      req.Critical,
		}
	}
	return gaps
}

// PriorityFor はギャップの大きさ・重み・クリティカル指定から優先度を決定します。
// クリティカル指定はサイズに関わらず high になります。
func PriorityFor(gap int, weight float64, critical bool) Priority {
	switch {
	case critical:
		return PriorityHigh
	case gap >= 3:
		return PriorityHigh
	case gap >= 2 || weight > 0.8:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// OrderGaps はギャップを優先度の高い順、同順位は gap × weight の大きい順、さらにスキル名順に並べます。
func OrderGaps(gaps map[string]Gap) []Gap {
	ordered := make([]Gap, 0, len(gaps))
	for _, g := range gaps {
		ordered = append(ordered, g)
	}

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if a.Severity() != b.Severity() {
			return a.Severity() > b.Severity()
		}
		return a.Skill < b.Skill
	})
	return ordered
}
