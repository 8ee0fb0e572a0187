package analysis

import (
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
)

// Result はユーザーと目標ロールの比較結果一式です。
type Result struct {
	Match          Match          `json:"match"`
	Gaps           map[string]Gap `json:"skillGaps"`
	Path           []Activity     `json:"learningPath"`
	TimelineMonths int            `json:"timeline"`
	Confidence     float64        `json:"confidence"`
}

// Analyze はギャップ分析・スコアリング・学習パス生成・見積もりをまとめて実行します。
func Analyze(u *user.User, r *role.Role) Result {
	gaps := ComputeGaps(u.Skills, r.RequiredSkills)
	return Result{
		Match:          ScoreMatch(u, r),
		Gaps:           gaps,
		Path:           Synthesize(gaps, r),
		TimelineMonths: EstimateTimeline(gaps),
		Confidence:     EstimateConfidence(u, r, gaps),
	}
}
