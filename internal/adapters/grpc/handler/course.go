package handler

import (
	"context"

	talentv1 "github.com/ogurasousui/codex-grpc-talent/internal/adapters/grpc/talentv1"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CourseGrpcHandler は CourseService の gRPC 実装です。
type CourseGrpcHandler struct {
	svc course.UseCase
	talentv1.UnimplementedCourseServiceServer
}

// NewCourseGrpcHandler は CourseGrpcHandler を生成します。
func NewCourseGrpcHandler(svc course.UseCase) *CourseGrpcHandler {
	return &CourseGrpcHandler{svc: svc}
}

// CreateCourse はコースを登録します。
func (h *CourseGrpcHandler) CreateCourse(ctx context.Context, req *talentv1.CreateCourseRequest) (*talentv1.CreateCourseResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateCourse(ctx, course.CreateCourseInput{
		Title:         req.Title,
		Skill:         req.Skill,
		Provider:      req.Provider,
		Level:         int(req.Level),
		DurationWeeks: int(req.DurationWeeks),
		Description:   req.Description,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.CreateCourseResponse{Course: toWireCourse(created)}, nil
}

// GetCourse はコースを取得します。
func (h *CourseGrpcHandler) GetCourse(ctx context.Context, req *talentv1.GetCourseRequest) (*talentv1.GetCourseResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetCourse(ctx, course.GetCourseInput{ID: req.Id})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.GetCourseResponse{Course: toWireCourse(found)}, nil
}

// ListCourses はコースの一覧を取得します。
func (h *CourseGrpcHandler) ListCourses(ctx context.Context, req *talentv1.ListCoursesRequest) (*talentv1.ListCoursesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListCourses(ctx, course.ListCoursesInput{
		Skill:     req.Skill,
		PageSize:  int(req.PageSize),
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	courses := make([]*talentv1.Course, 0, len(result.Courses))
	for _, c := range result.Courses {
		courses = append(courses, toWireCourse(c))
	}

	return &talentv1.ListCoursesResponse{Courses: courses, NextPageToken: result.NextPageToken}, nil
}

// DeleteCourse はコースを削除します。
func (h *CourseGrpcHandler) DeleteCourse(ctx context.Context, req *talentv1.DeleteCourseRequest) (*talentv1.DeleteCourseResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteCourse(ctx, course.DeleteCourseInput{ID: req.Id}); err != nil {
		return nil, toStatusError(err)
	}

	return &talentv1.DeleteCourseResponse{}, nil
}

func toWireCourse(c *course.Course) *talentv1.Course {
	if c == nil {
		return nil
	}

	return &talentv1.Course{
		Id:            c.ID,
		Title:         c.Title,
		Skill:         c.Skill,
		Provider:      c.Provider,
		Level:         int32(c.Level),
		DurationWeeks: int32(c.DurationWeeks),
		Description:   c.Description,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
