package handler

import (
	"context"

	talentv1 "github.com/ogurasousui/codex-grpc-talent/internal/adapters/grpc/talentv1"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/analysis"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecommendationGrpcHandler は RecommendationService の gRPC 実装です。
type RecommendationGrpcHandler struct {
	svc recommendation.UseCase
	talentv1.UnimplementedRecommendationServiceServer
}

// NewRecommendationGrpcHandler は RecommendationGrpcHandler を生成します。
func NewRecommendationGrpcHandler(svc recommendation.UseCase) *RecommendationGrpcHandler {
	return &RecommendationGrpcHandler{svc: svc}
}

// CompareRole は社員と目標ロールを比較します。結果は保存しません。
func (h *RecommendationGrpcHandler) CompareRole(ctx context.Context, req *talentv1.CompareRoleRequest) (*talentv1.CompareRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	cmp, err := h.svc.Compare(ctx, recommendation.CompareInput{EmployeeID: req.EmployeeId, Role: req.Role})
	if err != nil {
		return nil, toStatusError(err)
	}

	path := make([]*talentv1.LearningItem, 0, len(cmp.Result.Path))
	for _, a := range cmp.Result.Path {
		path = append(path, toWireActivity(a))
	}

	return &talentv1.CompareRoleResponse{
		EmployeeId:     cmp.User.ID,
		TargetRoleId:   cmp.Role.ID,
		TargetRole:     cmp.Role.Title,
		Match:          toWireMatch(cmp.Result.Match),
		SkillGaps:      toWireGaps(cmp.Result.Gaps),
		LearningPath:   path,
		TimelineMonths: int32(cmp.Result.TimelineMonths),
		Confidence:     cmp.Result.Confidence,
	}, nil
}

// GenerateRecommendation はレコメンデーションを生成または取得します。
func (h *RecommendationGrpcHandler) GenerateRecommendation(ctx context.Context, req *talentv1.GenerateRecommendationRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.Generate(ctx, recommendation.GenerateInput{
		EmployeeID: req.EmployeeId,
		Role:       req.Role,
		Refresh:    req.Refresh,
	})
	return respond(rec, err)
}

// GetRecommendation はレコメンデーションを取得します。
func (h *RecommendationGrpcHandler) GetRecommendation(ctx context.Context, req *talentv1.GetRecommendationRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.Get(ctx, recommendation.GetInput{ID: req.Id})
	return respond(rec, err)
}

// ListRecommendations はレコメンデーションの一覧を取得します。
func (h *RecommendationGrpcHandler) ListRecommendations(ctx context.Context, req *talentv1.ListRecommendationsRequest) (*talentv1.ListRecommendationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *recommendation.Status
	if req.Status != "" {
		s := recommendation.Status(req.Status)
		statusPtr = &s
	}

	result, err := h.svc.List(ctx, recommendation.ListInput{
		EmployeeID: req.EmployeeId,
		Status:     statusPtr,
		PageSize:   int(req.PageSize),
		PageToken:  req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	recs := make([]*talentv1.Recommendation, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		recs = append(recs, toWireRecommendation(rec))
	}

	return &talentv1.ListRecommendationsResponse{Recommendations: recs, NextPageToken: result.NextPageToken}, nil
}

// AcceptRecommendation はレコメンデーションを accepted に遷移させます。
func (h *RecommendationGrpcHandler) AcceptRecommendation(ctx context.Context, req *talentv1.TransitionRecommendationRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.Accept(ctx, recommendation.TransitionInput{ID: req.Id})
	return respond(rec, err)
}

// StartRecommendation はレコメンデーションを in_progress に遷移させます。
func (h *RecommendationGrpcHandler) StartRecommendation(ctx context.Context, req *talentv1.TransitionRecommendationRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.Start(ctx, recommendation.TransitionInput{ID: req.Id})
	return respond(rec, err)
}

// CompleteRecommendation はレコメンデーションを completed に遷移させます。
func (h *RecommendationGrpcHandler) CompleteRecommendation(ctx context.Context, req *talentv1.TransitionRecommendationRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.Complete(ctx, recommendation.TransitionInput{ID: req.Id})
	return respond(rec, err)
}

// UpdateItemProgress は学習アイテムの進捗を更新します。
func (h *RecommendationGrpcHandler) UpdateItemProgress(ctx context.Context, req *talentv1.UpdateItemProgressRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.UpdateItemProgress(ctx, recommendation.UpdateItemProgressInput{
		RecommendationID: req.RecommendationId,
		ItemID:           req.ItemId,
		Progress:         int(req.Progress),
	})
	return respond(rec, err)
}

// CompleteItem は学習アイテムを完了にします。
func (h *RecommendationGrpcHandler) CompleteItem(ctx context.Context, req *talentv1.CompleteItemRequest) (*talentv1.RecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rec, err := h.svc.CompleteItem(ctx, recommendation.CompleteItemInput{
		RecommendationID: req.RecommendationId,
		ItemID:           req.ItemId,
	})
	return respond(rec, err)
}

// ResetRecommendation はレコメンデーションを削除します。
func (h *RecommendationGrpcHandler) ResetRecommendation(ctx context.Context, req *talentv1.ResetRecommendationRequest) (*talentv1.ResetRecommendationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.Reset(ctx, recommendation.ResetInput{ID: req.Id}); err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.ResetRecommendationResponse{}, nil
}

func respond(rec *recommendation.Recommendation, err error) (*talentv1.RecommendationResponse, error) {
	if err != nil {
		return nil, toStatusError(err)
	}
	return &talentv1.RecommendationResponse{Recommendation: toWireRecommendation(rec)}, nil
}

func toWireRecommendation(rec *recommendation.Recommendation) *talentv1.Recommendation {
	if rec == nil {
		return nil
	}

	path := make([]*talentv1.LearningItem, 0, len(rec.LearningPath))
	for _, item := range rec.LearningPath {
		w := toWireActivity(item.Activity)
		w.Status = string(item.Status)
		w.Progress = int32(item.Progress)
		w.CourseId = item.CourseID
		path = append(path, w)
	}

	return &talentv1.Recommendation{
		Id:             rec.ID,
		EmployeeId:     rec.EmployeeID,
		TargetRoleId:   rec.TargetRoleID,
		TargetRole:     rec.TargetRoleTitle,
		SkillGaps:      toWireGaps(rec.SkillGaps),
		LearningPath:   path,
		TimelineMonths: int32(rec.TimelineMonths),
		Confidence:     rec.Confidence,
		Match:          toWireMatch(rec.Match),
		Status:         string(rec.Status),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func toWireMatch(m analysis.Match) *talentv1.Match {
	return &talentv1.Match{
		SkillsMatch:     int32(m.SkillsMatch),
		ExperienceMatch: int32(m.ExperienceMatch),
		EducationMatch:  int32(m.EducationMatch),
		OverallMatch:    int32(m.OverallMatch),
		Readiness:       int32(m.Readiness),
	}
}

// toWireGaps は優先度順に並べたギャップを返します。
func toWireGaps(gaps map[string]analysis.Gap) []*talentv1.SkillGap {
	ordered := analysis.OrderGaps(gaps)
	out := make([]*talentv1.SkillGap, 0, len(ordered))
	for _, g := range ordered {
		out = append(out, &talentv1.SkillGap{
			Skill:         g.Skill,
			CurrentLevel:  int32(g.CurrentLevel),
			RequiredLevel: int32(g.RequiredLevel),
			Gap:           int32(g.Gap),
			Priority:      string(g.Priority),
			Weight:        g.Weight,
			Critical:      g.Critical,
		})
	}
	return out
}

func toWireActivity(a analysis.Activity) *talentv1.LearningItem {
	return &talentv1.LearningItem{
		Id:            a.ID,
		Type:          string(a.Type),
		Title:         a.Title,
		Provider:      a.Provider,
		DurationWeeks: int32(a.DurationWeeks),
		TargetSkill:   a.TargetSkill,
		Priority:      string(a.Priority),
		Month:         int32(a.Month),
		SkillImpact:   int32(a.SkillImpact),
	}
}
