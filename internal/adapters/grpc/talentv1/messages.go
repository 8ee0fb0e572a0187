package talentv1

import "time"

// SkillLevel は保有スキルのレベルです。
type SkillLevel struct {
	Level       int32     `json:"level"`
	Verified    bool      `json:"verified"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SkillRequirement はロールが要求するスキルです。
type SkillRequirement struct {
	MinimumLevel int32   `json:"minimumLevel"`
	Weight       float64 `json:"weight"`
	Critical     bool    `json:"critical"`
}

// User は社員プロフィールです。
type User struct {
	Id              string                `json:"id"`
	Email           string                `json:"email"`
	Name            string                `json:"name"`
	Department      string                `json:"department,omitempty"`
	Status          string                `json:"status"`
	Skills          map[string]SkillLevel `json:"skills,omitempty"`
	Performance     int32                 `json:"performance"`
	Potential       int32                 `json:"potential"`
	ExperienceYears float64               `json:"experienceYears"`
	Education       []string              `json:"education,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type CreateUserRequest struct {
	Email           string                `json:"email"`
	Name            string                `json:"name"`
	Department      string                `json:"department,omitempty"`
	Skills          map[string]SkillLevel `json:"skills,omitempty"`
	Performance     int32                 `json:"performance"`
	Potential       int32                 `json:"potential"`
	ExperienceYears float64               `json:"experienceYears"`
	Education       []string              `json:"education,omitempty"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

// UpdateUserRequest は部分更新です。nil のフィールドは変更しません。
// UpdateEducation が true の場合は Education で置き換えます。
type UpdateUserRequest struct {
	Id              string   `json:"id"`
	Name            *string  `json:"name,omitempty"`
	Department      *string  `json:"department,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Performance     *int32   `json:"performance,omitempty"`
	Potential       *int32   `json:"potential,omitempty"`
	ExperienceYears *float64 `json:"experienceYears,omitempty"`
	Education       []string `json:"education,omitempty"`
	UpdateEducation bool     `json:"updateEducation,omitempty"`
}

type UpdateUserResponse struct {
	User *User `json:"user"`
}

type SetSkillRequest struct {
	UserId   string `json:"userId"`
	Skill    string `json:"skill"`
	Level    int32  `json:"level"`
	Verified bool   `json:"verified"`
}

type SetSkillResponse struct {
	User *User `json:"user"`
}

type RemoveSkillRequest struct {
	UserId string `json:"userId"`
	Skill  string `json:"skill"`
}

type RemoveSkillResponse struct {
	User *User `json:"user"`
}

type DeleteUserRequest struct {
	Id string `json:"id"`
}

type DeleteUserResponse struct{}

type GetUserRequest struct {
	Id string `json:"id"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

type ListUsersRequest struct {
	PageSize   int32  `json:"pageSize,omitempty"`
	PageToken  string `json:"pageToken,omitempty"`
	Status     string `json:"status,omitempty"`
	Department string `json:"department,omitempty"`
}

type ListUsersResponse struct {
	Users         []*User `json:"users"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

type SetCurrentUserRequest struct {
	Id string `json:"id"`
}

type SetCurrentUserResponse struct {
	User *User `json:"user"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Role は目標ロールです。
type Role struct {
	Id              string                      `json:"id"`
	Title           string                      `json:"title"`
	Department      string                      `json:"department,omitempty"`
	RequiredSkills  map[string]SkillRequirement `json:"requiredSkills,omitempty"`
	ExperienceYears float64                     `json:"experienceYears"`
	Education       []string                    `json:"education,omitempty"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

type CreateRoleRequest struct {
	Title           string                      `json:"title"`
	Department      string                      `json:"department,omitempty"`
	RequiredSkills  map[string]SkillRequirement `json:"requiredSkills,omitempty"`
	ExperienceYears float64                     `json:"experienceYears"`
	Education       []string                    `json:"education,omitempty"`
}

type CreateRoleResponse struct {
	Role *Role `json:"role"`
}

type UpdateRoleRequest struct {
	Id                   string                      `json:"id"`
	Title                *string                     `json:"title,omitempty"`
	Department           *string                     `json:"department,omitempty"`
	RequiredSkills       map[string]SkillRequirement `json:"requiredSkills,omitempty"`
	UpdateRequiredSkills bool                        `json:"updateRequiredSkills,omitempty"`
	ExperienceYears      *float64                    `json:"experienceYears,omitempty"`
	Education            []string                    `json:"education,omitempty"`
	UpdateEducation      bool                        `json:"updateEducation,omitempty"`
}

type UpdateRoleResponse struct {
	Role *Role `json:"role"`
}

type DeleteRoleRequest struct {
	Id string `json:"id"`
}

type DeleteRoleResponse struct{}

// GetRoleRequest の Ref には ID またはロール名を指定します。
type GetRoleRequest struct {
	Ref string `json:"ref"`
}

type GetRoleResponse struct {
	Role *Role `json:"role"`
}

type ListRolesRequest struct {
	PageSize   int32  `json:"pageSize,omitempty"`
	PageToken  string `json:"pageToken,omitempty"`
	Department string `json:"department,omitempty"`
}

type ListRolesResponse struct {
	Roles         []*Role `json:"roles"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

// Course は研修カタログのコースです。
type Course struct {
	Id            string    `json:"id"`
	Title         string    `json:"title"`
	Skill         string    `json:"skill"`
	Provider      string    `json:"provider"`
	Level         int32     `json:"level"`
	DurationWeeks int32     `json:"durationWeeks"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateCourseRequest struct {
	Title         string `json:"title"`
	Skill         string `json:"skill"`
	Provider      string `json:"provider,omitempty"`
	Level         int32  `json:"level"`
	DurationWeeks int32  `json:"durationWeeks"`
	Description   string `json:"description,omitempty"`
}

type CreateCourseResponse struct {
	Course *Course `json:"course"`
}

type GetCourseRequest struct {
	Id string `json:"id"`
}

type GetCourseResponse struct {
	Course *Course `json:"course"`
}

type ListCoursesRequest struct {
	Skill     string `json:"skill,omitempty"`
	PageSize  int32  `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type ListCoursesResponse struct {
	Courses       []*Course `json:"courses"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

type DeleteCourseRequest struct {
	Id string `json:"id"`
}

type DeleteCourseResponse struct{}

// Match はロール適合度です。
type Match struct {
	SkillsMatch     int32 `json:"skillsMatch"`
	ExperienceMatch int32 `json:"experienceMatch"`
	EducationMatch  int32 `json:"educationMatch"`
	OverallMatch    int32 `json:"overallMatch"`
	Readiness       int32 `json:"readiness"`
}

// SkillGap はスキルごとの差分です。
type SkillGap struct {
	Skill         string  `json:"skill"`
	CurrentLevel  int32   `json:"currentLevel"`
	RequiredLevel int32   `json:"requiredLevel"`
	Gap           int32   `json:"gap"`
	Priority      string  `json:"priority"`
	Weight        float64 `json:"weight"`
	Critical      bool    `json:"critical"`
}

// LearningItem は学習パス上のアクティビティです。
type LearningItem struct {
	Id            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Provider      string `json:"provider"`
	DurationWeeks int32  `json:"durationWeeks"`
	TargetSkill   string `json:"targetSkill"`
	Priority      string `json:"priority"`
	Month         int32  `json:"month"`
	SkillImpact   int32  `json:"skillImpact"`
	Status        string `json:"status,omitempty"`
	Progress      int32  `json:"progress"`
	CourseId      string `json:"courseId,omitempty"`
}

// Recommendation は目標ロールに向けた学習計画です。
type Recommendation struct {
	Id             string          `json:"id"`
	EmployeeId     string          `json:"employeeId"`
	TargetRoleId   string          `json:"targetRoleId"`
	TargetRole     string          `json:"targetRole"`
	SkillGaps      []*SkillGap     `json:"skillGaps"`
	LearningPath   []*LearningItem `json:"learningPath"`
	TimelineMonths int32           `json:"timelineMonths"`
	Confidence     float64         `json:"confidence"`
	Match          *Match          `json:"match"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type CompareRoleRequest struct {
	EmployeeId string `json:"employeeId"`
	Role       string `json:"role"`
}

type CompareRoleResponse struct {
	EmployeeId     string          `json:"employeeId"`
	TargetRoleId   string          `json:"targetRoleId"`
	TargetRole     string          `json:"targetRole"`
	Match          *Match          `json:"match"`
	SkillGaps      []*SkillGap     `json:"skillGaps"`
	LearningPath   []*LearningItem `json:"learningPath"`
	TimelineMonths int32           `json:"timelineMonths"`
	Confidence     float64         `json:"confidence"`
}

type GenerateRecommendationRequest struct {
	EmployeeId string `json:"employeeId"`
	Role       string `json:"role"`
	Refresh    bool   `json:"refresh,omitempty"`
}

type GetRecommendationRequest struct {
	Id string `json:"id"`
}

type ListRecommendationsRequest struct {
	EmployeeId string `json:"employeeId,omitempty"`
	Status     string `json:"status,omitempty"`
	PageSize   int32  `json:"pageSize,omitempty"`
	PageToken  string `json:"pageToken,omitempty"`
}

type ListRecommendationsResponse struct {
	Recommendations []*Recommendation `json:"recommendations"`
	NextPageToken   string            `json:"nextPageToken,omitempty"`
}

// TransitionRecommendationRequest は Accept / Start / Complete の共通リクエストです。
type TransitionRecommendationRequest struct {
	Id string `json:"id"`
}

type UpdateItemProgressRequest struct {
	RecommendationId string `json:"recommendationId"`
	ItemId           string `json:"itemId"`
	Progress         int32  `json:"progress"`
}

type CompleteItemRequest struct {
	RecommendationId string `json:"recommendationId"`
	ItemId           string `json:"itemId"`
}

// RecommendationResponse はレコメンデーションを 1 件返すメソッドの共通レスポンスです。
type RecommendationResponse struct {
	Recommendation *Recommendation `json:"recommendation"`
}

type ResetRecommendationRequest struct {
	Id string `json:"id"`
}

type ResetRecommendationResponse struct{}
