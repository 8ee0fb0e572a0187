package recommendation

import (
	"strings"
	"time"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/analysis"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
)

// Status はレコメンデーションの状態です。
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ItemStatus は学習アイテムの状態です。
type ItemStatus string

const (
	ItemNotStarted ItemStatus = "not_started"
	ItemInProgress ItemStatus = "in_progress"
	ItemCompleted  ItemStatus = "completed"
)

const (
	minProgress = 0
	maxProgress = 100
	// maxTimelineMonths は保存可能なタイムラインの上限です。
	maxTimelineMonths = 60
)

// transitions は許可された状態遷移です。完了からの遷移はありません。
var transitions = map[Status][]Status{
	StatusPending:    {StatusAccepted, StatusInProgress},
	StatusAccepted:   {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted},
}

// LearningItem は学習パス上のアクティビティに進捗を付与したものです。
type LearningItem struct {
	analysis.Activity
	Status   ItemStatus `json:"status"`
	Progress int        `json:"progress"`
	// CourseID は研修カタログ上の対応コースです。該当がなければ空です。
	CourseID string `json:"courseId,omitempty"`
}

// Recommendation は目標ロールに向けた学習計画と、その進行状態を表します。
type Recommendation struct {
	ID              string                  `json:"id"`
	EmployeeID      string                  `json:"employeeId"`
	TargetRoleID    string                  `json:"targetRoleId"`
	TargetRoleTitle string                  `json:"targetRole"`
	SkillGaps       map[string]analysis.Gap `json:"skillGaps"`
	LearningPath    []LearningItem          `json:"learningPath"`
	TimelineMonths  int                     `json:"timeline"`
	Confidence      float64                 `json:"confidence"`
	Match           analysis.Match          `json:"match"`
	Status          Status                  `json:"status"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// New は分析結果から pending 状態のレコメンデーションを組み立てます。
func New(employeeID string, r *role.Role, res analysis.Result, now time.Time) (*Recommendation, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	if r == nil || strings.TrimSpace(r.ID) == "" {
		return nil, ErrInvalidRole
	}
	if res.TimelineMonths < 1 || res.TimelineMonths > maxTimelineMonths {
		return nil, ErrInvalidTimeline
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		return nil, ErrInvalidConfidence
	}

	rec := &Recommendation{
		EmployeeID:      employeeID,
		TargetRoleID:    r.ID,
		TargetRoleTitle: r.Title,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	rec.apply(res)
	return rec, nil
}

// apply は分析結果で内容を置き換えます。学習アイテムの進捗は初期化されます。
func (r *Recommendation) apply(res analysis.Result) {
	r.SkillGaps = make(map[string]analysis.Gap, len(res.Gaps))
	for name, g := range res.Gaps {
		r.SkillGaps[name] = g
	}

	r.LearningPath = make([]LearningItem, 0, len(res.Path))
	for _, act := range res.Path {
		r.LearningPath = append(r.LearningPath, LearningItem{Activity: act, Status: ItemNotStarted})
	}

	r.TimelineMonths = res.TimelineMonths
	r.Confidence = res.Confidence
	r.Match = res.Match
}

// Clone はディープコピーを返します。
func (r *Recommendation) Clone() *Recommendation {
	if r == nil {
		return nil
	}
	cp := *r
	if r.SkillGaps != nil {
		cp.SkillGaps = make(map[string]analysis.Gap, len(r.SkillGaps))
		for name, g := range r.SkillGaps {
			cp.SkillGaps[name] = g
		}
	}
	if r.LearningPath != nil {
		cp.LearningPath = append([]LearningItem(nil), r.LearningPath...)
	}
	return &cp
}

// CanTransition は from から to への遷移が許可されているかを返します。
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsValidStatus は定義済みの状態かどうかを返します。
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Transition は状態を to に遷移させます。
func (r *Recommendation) Transition(to Status, now time.Time) error {
	if !IsValidStatus(to) {
		return ErrInvalidStatus
	}
	if !CanTransition(r.Status, to) {
		return ErrInvalidTransition
	}
	r.Status = to
	r.UpdatedAt = now
	return nil
}

// SetItemProgress は学習アイテムの進捗を更新します。
// 進捗 100 でアイテムは completed になりますが、レコメンデーション自体の状態は変更しません。
func (r *Recommendation) SetItemProgress(itemID string, progress int, now time.Time) (*LearningItem, error) {
	if progress < minProgress || progress > maxProgress {
		return nil, ErrInvalidProgress
	}

	for i := range r.LearningPath {
		item := &r.LearningPath[i]
		if item.ID != itemID {
			continue
		}
		item.Progress = progress
		item.Status = itemStatusFor(progress)
		r.UpdatedAt = now
		found := *item
		return &found, nil
	}
	return nil, ErrItemNotFound
}

func itemStatusFor(progress int) ItemStatus {
	switch {
	case progress >= maxProgress:
		return ItemCompleted
	case progress > minProgress:
		return ItemInProgress
	default:
		return ItemNotStarted
	}
}
