package analysis

import (
	"math"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

const (
	minTimelineMonths = 3
	maxTimelineMonths = 24
	minConfidence     = 0.1
	maxConfidence     = 0.95
)

// EstimateTimeline は 6 + floor(ギャップ数/2)×2 + 高優先度ギャップ数×2 + floor(平均ギャップ)×2 を
// 3〜24 ヶ月に収めた値を返します。
func EstimateTimeline(gaps map[string]Gap) int {
	total := len(gaps)
	high := 0
	sum := 0
	for _, g := range gaps {
		if g.Priority.Rank() >= PriorityHigh.Rank() {
			high++
		}
		sum += g.Gap
	}

	avgFloor := 0
	if total > 0 {
		avgFloor = int(math.Floor(float64(sum) / float64(total)))
	}

	months := 6 + (total/2)*2 + high*2 + avgFloor*2
	return clampInt(months, minTimelineMonths, maxTimelineMonths)
}

// EstimateConfidence は学習パスで目標ロールに到達できる確度を 0.1〜0.95 で見積もります。
func EstimateConfidence(u *user.User, r *role.Role, gaps map[string]Gap) float64 {
	confidence := 0.5
	confidence += 0.2 * experienceRatio(u.ExperienceYears, r.ExperienceYears)
	confidence += 0.3 * coverage(u, r)

	// 重みの合計が 0 の場合は SkillsMatch と同じく各スキルを重み 1 として扱います。
	totalWeight := 0.0
	for _, req := range r.RequiredSkills {
		totalWeight += req.Weight
	}
	unweighted := totalWeight == 0

	maxSeverity := 0.0
	for _, req := range r.RequiredSkills {
		if unweighted {
			maxSeverity += float64(req.MinimumLevel)
			continue
		}
		maxSeverity += float64(req.MinimumLevel) * req.Weight
	}
	severity := 0.0
	for _, g := range gaps {
		if unweighted {
			severity += float64(g.Gap)
			continue
		}
		severity += g.Severity()
	}
	if maxSeverity > 0 {
		confidence += 0.2 * (1 - severity/maxSeverity)
	} else {
		confidence += 0.2
	}

	return math.Min(math.Max(confidence, minConfidence), maxConfidence)
}

// coverage は要求スキルのうち要求レベルを満たしている割合です。要求がなければ 1 です。
func coverage(u *user.User, r *role.Role) float64 {
	if len(r.RequiredSkills) == 0 {
		return 1
	}
	met := 0
	for name, req := range r.RequiredSkills {
		if u.Skills[name].Level >= req.MinimumLevel {
			met++
		}
	}
	return float64(met) / float64(len(r.RequiredSkills))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
