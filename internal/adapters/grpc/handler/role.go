package handler

import (
	"context"

	talentv1 "github.com/ogurasousui/codex-grpc-talent/internal/adapters/grpc/talentv1"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RoleGrpcHandler は RoleService の gRPC 実装です。
type RoleGrpcHandler struct {
	svc role.UseCase
	talentv1.UnimplementedRoleServiceServer
}

// NewRoleGrpcHandler は RoleGrpcHandler を生成します。
func NewRoleGrpcHandler(svc role.UseCase) *RoleGrpcHandler {
	return &RoleGrpcHandler{svc: svc}
}

// CreateRole はロールを作成します。
func (h *RoleGrpcHandler) CreateRole(ctx context.Context, req *talentv1.CreateRoleRequest) (*talentv1.CreateRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateRole(ctx, role.CreateRoleInput{
		Title:           req.Title,
		Department:      req.Department,
		RequiredSkills:  toDomainRequirements(req.RequiredSkills),
		ExperienceYears: req.ExperienceYears,
		Education:       req.Education,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.CreateRoleResponse{Role: toWireRole(created)}, nil
}

// UpdateRole はロールを部分更新します。
func (h *RoleGrpcHandler) UpdateRole(ctx context.Context, req *talentv1.UpdateRoleRequest) (*talentv1.UpdateRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdateRole(ctx, role.UpdateRoleInput{
		ID:                req.Id,
		Title:             req.Title,
		Department:        req.Department,
		RequiredSkills:    toDomainRequirements(req.RequiredSkills),
		RequiredSkillsSet: req.UpdateRequiredSkills,
		ExperienceYears:   req.ExperienceYears,
		Education:         req.Education,
		EducationSet:      req.UpdateEducation,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.UpdateRoleResponse{Role: toWireRole(updated)}, nil
}

// DeleteRole はロールを削除します。
func (h *RoleGrpcHandler) DeleteRole(ctx context.Context, req *talentv1.DeleteRoleRequest) (*talentv1.DeleteRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteRole(ctx, role.DeleteRoleInput{ID: req.Id}); err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.DeleteRoleResponse{}, nil
}

// GetRole は ID またはロール名でロールを取得します。
func (h *RoleGrpcHandler) GetRole(ctx context.Context, req *talentv1.GetRoleRequest) (*talentv1.GetRoleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.ResolveRole(ctx, req.Ref)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.GetRoleResponse{Role: toWireRole(found)}, nil
}

// ListRoles はロールの一覧を取得します。
func (h *RoleGrpcHandler) ListRoles(ctx context.Context, req *talentv1.ListRolesRequest) (*talentv1.ListRolesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListRoles(ctx, role.ListRolesInput{
		PageSize:   int(req.PageSize),
		PageToken:  req.PageToken,
		Department: req.Department,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	roles := make([]*talentv1.Role, 0, len(result.Roles))
	for _, r := range result.Roles {
		roles = append(roles, toWireRole(r))
	}

	return &talentv1.ListRolesResponse{Roles: roles, NextPageToken: result.NextPageToken}, nil
}

func toWireRole(r *role.Role) *talentv1.Role {
	if r == nil {
		return nil
	}

	var required map[string]talentv1.SkillRequirement
	if len(r.RequiredSkills) > 0 {
		required = make(map[string]talentv1.SkillRequirement, len(r.RequiredSkills))
		for name, req := range r.RequiredSkills {
			required[name] = talentv1.SkillRequirement{
				MinimumLevel: int32(req.MinimumLevel),
				Weight:       req.Weight,
				Critical:     req.Critical,
			}
		}
	}

	return &talentv1.Role{
		Id:              r.ID,
		Title:           r.Title,
		Department:      r.Department,
		RequiredSkills:  required,
		ExperienceYears: r.ExperienceYears,
		Education:       r.Education,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toDomainRequirements(in map[string]talentv1.SkillRequirement) map[string]skill.Requirement {
	if in == nil {
		return nil
	}
	out := make(map[string]skill.Requirement, len(in))
	for name, r := range in {
		out[name] = skill.Requirement{MinimumLevel: int(r.MinimumLevel), Weight: r.Weight, Critical: r.Critical}
	}
	return out
}
