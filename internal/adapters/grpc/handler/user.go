package handler

import (
	"context"

	talentv1 "github.com/ogurasousui/codex-grpc-talent/internal/adapters/grpc/talentv1"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserGrpcHandler は UserService の gRPC 実装です。
type UserGrpcHandler struct {
	svc user.UseCase
	talentv1.UnimplementedUserServiceServer
}

// NewUserGrpcHandler は UserGrpcHandler を生成します。
func NewUserGrpcHandler(svc user.UseCase) *UserGrpcHandler {
	return &UserGrpcHandler{svc: svc}
}

// CreateUser はユーザーを作成します。
func (h *UserGrpcHandler) CreateUser(ctx context.Context, req *talentv1.CreateUserRequest) (*talentv1.CreateUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateUser(ctx, user.CreateUserInput{
		Email:           req.Email,
		Name:            req.Name,
		Department:      req.Department,
		Skills:          toDomainProficiencies(req.Skills),
		Performance:     int(req.Performance),
		Potential:       int(req.Potential),
		ExperienceYears: req.ExperienceYears,
		Education:       req.Education,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.CreateUserResponse{User: toWireUser(created)}, nil
}

// UpdateUser はユーザー情報を部分更新します。
func (h *UserGrpcHandler) UpdateUser(ctx context.Context, req *talentv1.UpdateUserRequest) (*talentv1.UpdateUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *user.Status
	if req.Status != nil {
		s := user.Status(*req.Status)
		statusPtr = &s
	}

	in := user.UpdateUserInput{
		ID:              req.Id,
		Name:            req.Name,
		Department:      req.Department,
		Status:          statusPtr,
		ExperienceYears: req.ExperienceYears,
		Education:       req.Education,
		EducationSet:    req.UpdateEducation,
	}
	if req.Performance != nil {
		v := int(*req.Performance)
		in.Performance = &v
	}
	if req.Potential != nil {
		v := int(*req.Potential)
		in.Potential = &v
	}

	updated, err := h.svc.UpdateUser(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.UpdateUserResponse{User: toWireUser(updated)}, nil
}

// SetSkill はユーザーのスキルを登録または更新します。
func (h *UserGrpcHandler) SetSkill(ctx context.Context, req *talentv1.SetSkillRequest) (*talentv1.SetSkillResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.SetSkill(ctx, user.SetSkillInput{
		UserID:   req.UserId,
		Skill:    req.Skill,
		Level:    int(req.Level),
		Verified: req.Verified,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.SetSkillResponse{User: toWireUser(updated)}, nil
}

// RemoveSkill はユーザーのスキルを削除します。
func (h *UserGrpcHandler) RemoveSkill(ctx context.Context, req *talentv1.RemoveSkillRequest) (*talentv1.RemoveSkillResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.RemoveSkill(ctx, user.RemoveSkillInput{UserID: req.UserId, Skill: req.Skill})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.RemoveSkillResponse{User: toWireUser(updated)}, nil
}

// DeleteUser はユーザーを削除します。
func (h *UserGrpcHandler) DeleteUser(ctx context.Context, req *talentv1.DeleteUserRequest) (*talentv1.DeleteUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteUser(ctx, user.DeleteUserInput{ID: req.Id}); err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.DeleteUserResponse{}, nil
}

// GetUser はユーザーを取得します。
func (h *UserGrpcHandler) GetUser(ctx context.Context, req *talentv1.GetUserRequest) (*talentv1.GetUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetUser(ctx, user.GetUserInput{ID: req.Id})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.GetUserResponse{User: toWireUser(found)}, nil
}

// ListUsers はユーザーの一覧を取得します。
func (h *UserGrpcHandler) ListUsers(ctx context.Context, req *talentv1.ListUsersRequest) (*talentv1.ListUsersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *user.Status
	if req.Status != "" {
		s := user.Status(req.Status)
		statusPtr = &s
	}

	result, err := h.svc.ListUsers(ctx, user.ListUsersInput{
		PageSize:   int(req.PageSize),
		PageToken:  req.PageToken,
		Status:     statusPtr,
		Department: req.Department,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	users := make([]*talentv1.User, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, toWireUser(u))
	}

	return &talentv1.ListUsersResponse{
		Users:         users,
		NextPageToken: result.NextPageToken,
	}, nil
}

// SetCurrentUser はカレントユーザーを切り替えます。
func (h *UserGrpcHandler) SetCurrentUser(ctx context.Context, req *talentv1.SetCurrentUserRequest) (*talentv1.SetCurrentUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	current, err := h.svc.SetCurrentUser(ctx, user.SetCurrentUserInput{ID: req.Id})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.SetCurrentUserResponse{User: toWireUser(current)}, nil
}

// GetCurrentUser はカレントユーザーを返します。
func (h *UserGrpcHandler) GetCurrentUser(ctx context.Context, _ *talentv1.GetCurrentUserRequest) (*talentv1.GetCurrentUserResponse, error) {
	current, err := h.svc.CurrentUser(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.GetCurrentUserResponse{User: toWireUser(current)}, nil
}

func toWireUser(u *user.User) *talentv1.User {
	if u == nil {
		return nil
	}

	var skills map[string]talentv1.SkillLevel
	if len(u.Skills) > 0 {
		skills = make(map[string]talentv1.SkillLevel, len(u.Skills))
		for name, p := range u.Skills {
			skills[name] = talentv1.SkillLevel{
				Level:       int32(p.Level),
				Verified:    p.Verified,
				LastUpdated: p.LastUpdated,
			}
		}
	}

	return &talentv1.User{
		Id:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Department:      u.Department,
		Status:          string(u.Status),
		Skills:          skills,
		Performance:     int32(u.Performance),
		Potential:       int32(u.Potential),
		ExperienceYears: u.ExperienceYears,
		Education:       u.Education,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toDomainProficiencies(in map[string]talentv1.SkillLevel) map[string]skill.Proficiency {
	if in == nil {
		return nil
	}
	out := make(map[string]skill.Proficiency, len(in))
	for name, s := range in {
		out[name] = skill.Proficiency{Level: int(s.Level), Verified: s.Verified, LastUpdated: s.LastUpdated}
	}
	return out
}
