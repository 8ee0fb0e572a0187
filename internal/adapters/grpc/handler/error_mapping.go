package handler

import (
	"errors"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/skill"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidName),
		errors.Is(err, user.ErrInvalidStatus),
		errors.Is(err, user.ErrInvalidID),
		errors.Is(err, user.ErrInvalidPerformance),
		errors.Is(err, user.ErrInvalidPotential),
		errors.Is(err, user.ErrInvalidExperience),
		errors.Is(err, user.ErrInvalidPageSize),
		errors.Is(err, user.ErrInvalidPageToken),
		errors.Is(err, skill.ErrInvalidName),
		errors.Is(err, skill.ErrDuplicateName),
		errors.Is(err, skill.ErrInvalidLevel),
		errors.Is(err, skill.ErrInvalidWeight),
		errors.Is(err, role.ErrInvalidTitle),
		errors.Is(err, role.ErrInvalidExperience),
		errors.Is(err, role.ErrInvalidID),
		errors.Is(err, role.ErrInvalidPageSize),
		errors.Is(err, role.ErrInvalidPageToken),
		errors.Is(err, course.ErrInvalidID),
		errors.Is(err, course.ErrInvalidTitle),
		errors.Is(err, course.ErrInvalidLevel),
		errors.Is(err, course.ErrInvalidDuration),
		errors.Is(err, course.ErrInvalidPageSize),
		errors.Is(err, course.ErrInvalidPageToken),
		errors.Is(err, recommendation.ErrInvalidStatus),
		errors.Is(err, recommendation.ErrInvalidProgress),
		errors.Is(err, recommendation.ErrInvalidTimeline),
		errors.Is(err, recommendation.ErrInvalidConfidence),
		errors.Is(err, recommendation.ErrInvalidID),
		errors.Is(err, recommendation.ErrInvalidEmployeeID),
		errors.Is(err, recommendation.ErrInvalidRole),
		errors.Is(err, recommendation.ErrInvalidPageSize),
		errors.Is(err, recommendation.ErrInvalidPageToken):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists),
		errors.Is(err, role.ErrTitleAlreadyExists),
		errors.Is(err, recommendation.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrNoCurrentUser),
		errors.Is(err, role.ErrRoleNotFound),
		errors.Is(err, course.ErrCourseNotFound),
		errors.Is(err, recommendation.ErrRecommendationNotFound),
		errors.Is(err, recommendation.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, recommendation.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, user.ErrSessionUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
