package talentv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	UserServiceName           = "talent.v1.UserService"
	RoleServiceName           = "talent.v1.RoleService"
	CourseServiceName         = "talent.v1.CourseService"
	RecommendationServiceName = "talent.v1.RecommendationService"
)

// unary は型付きのサービスメソッドを grpc.MethodHandler に変換します。
func unary[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func method[S, Req, Resp any](service, name string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler:    unary(fullMethod(service, name), call),
	}
}

func fullMethod(service, name string) string {
	return "/" + service + "/" + name
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, name string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, name), in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func unimplemented(name string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", name)
}

// UserServiceServer は talent.v1.UserService のサーバーインターフェースです。
type UserServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error)
	SetSkill(context.Context, *SetSkillRequest) (*SetSkillResponse, error)
	RemoveSkill(context.Context, *RemoveSkillRequest) (*RemoveSkillResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	SetCurrentUser(context.Context, *SetCurrentUserRequest) (*SetCurrentUserResponse, error)
	GetCurrentUser(context.Context, *GetCurrentUserRequest) (*GetCurrentUserResponse, error)
}

// UnimplementedUserServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedUserServiceServer struct{}

func (UnimplementedUserServiceServer) CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, unimplemented("CreateUser")
}
func (UnimplementedUserServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error) {
	return nil, unimplemented("UpdateUser")
}
func (UnimplementedUserServiceServer) SetSkill(context.Context, *SetSkillRequest) (*SetSkillResponse, error) {
	return nil, unimplemented("SetSkill")
}
func (UnimplementedUserServiceServer) RemoveSkill(context.Context, *RemoveSkillRequest) (*RemoveSkillResponse, error) {
	return nil, unimplemented("RemoveSkill")
}
func (UnimplementedUserServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error) {
	return nil, unimplemented("DeleteUser")
}
func (UnimplementedUserServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, unimplemented("GetUser")
}
func (UnimplementedUserServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListUsers")
}
func (UnimplementedUserServiceServer) SetCurrentUser(context.Context, *SetCurrentUserRequest) (*SetCurrentUserResponse, error) {
	return nil, unimplemented("SetCurrentUser")
}
func (UnimplementedUserServiceServer) GetCurrentUser(context.Context, *GetCurrentUserRequest) (*GetCurrentUserResponse, error) {
	return nil, unimplemented("GetCurrentUser")
}

// UserService_ServiceDesc は talent.v1.UserService のサービス定義です。
var UserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: UserServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(UserServiceName, "CreateUser", UserServiceServer.CreateUser),
		method(UserServiceName, "UpdateUser", UserServiceServer.UpdateUser),
		method(UserServiceName, "SetSkill", UserServiceServer.SetSkill),
		method(UserServiceName, "RemoveSkill", UserServiceServer.RemoveSkill),
		method(UserServiceName, "DeleteUser", UserServiceServer.DeleteUser),
		method(UserServiceName, "GetUser", UserServiceServer.GetUser),
		method(UserServiceName, "ListUsers", UserServiceServer.ListUsers),
		method(UserServiceName, "SetCurrentUser", UserServiceServer.SetCurrentUser),
		method(UserServiceName, "GetCurrentUser", UserServiceServer.GetCurrentUser),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talent/v1/user.json",
}

// RegisterUserServiceServer はサーバーに UserService を登録します。
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserService_ServiceDesc, srv)
}

// UserServiceClient は talent.v1.UserService のクライアントです。
type UserServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUserServiceClient は UserServiceClient を生成します。
func NewUserServiceClient(cc grpc.ClientConnInterface) *UserServiceClient {
	return &UserServiceClient{cc: cc}
}

func (c *UserServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	return invoke[CreateUserResponse](ctx, c.cc, UserServiceName, "CreateUser", in, opts)
}
func (c *UserServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error) {
	return invoke[UpdateUserResponse](ctx, c.cc, UserServiceName, "UpdateUser", in, opts)
}
func (c *UserServiceClient) SetSkill(ctx context.Context, in *SetSkillRequest, opts ...grpc.CallOption) (*SetSkillResponse, error) {
	return invoke[SetSkillResponse](ctx, c.cc, UserServiceName, "SetSkill", in, opts)
}
func (c *UserServiceClient) RemoveSkill(ctx context.Context, in *RemoveSkillRequest, opts ...grpc.CallOption) (*RemoveSkillResponse, error) {
	return invoke[RemoveSkillResponse](ctx, c.cc, UserServiceName, "RemoveSkill", in, opts)
}
func (c *UserServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	return invoke[DeleteUserResponse](ctx, c.cc, UserServiceName, "DeleteUser", in, opts)
}
func (c *UserServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, UserServiceName, "GetUser", in, opts)
}
func (c *UserServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, UserServiceName, "ListUsers", in, opts)
}
func (c *UserServiceClient) SetCurrentUser(ctx context.Context, in *SetCurrentUserRequest, opts ...grpc.CallOption) (*SetCurrentUserResponse, error) {
	return invoke[SetCurrentUserResponse](ctx, c.cc, UserServiceName, "SetCurrentUser", in, opts)
}
func (c *UserServiceClient) GetCurrentUser(ctx context.Context, in *GetCurrentUserRequest, opts ...grpc.CallOption) (*GetCurrentUserResponse, error) {
	return invoke[GetCurrentUserResponse](ctx, c.cc, UserServiceName, "GetCurrentUser", in, opts)
}

// RoleServiceServer は talent.v1.RoleService のサーバーインターフェースです。
type RoleServiceServer interface {
	CreateRole(context.Context, *CreateRoleRequest) (*CreateRoleResponse, error)
	UpdateRole(context.Context, *UpdateRoleRequest) (*UpdateRoleResponse, error)
	DeleteRole(context.Context, *DeleteRoleRequest) (*DeleteRoleResponse, error)
	GetRole(context.Context, *GetRoleRequest) (*GetRoleResponse, error)
	ListRoles(context.Context, *ListRolesRequest) (*ListRolesResponse, error)
}

// UnimplementedRoleServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedRoleServiceServer struct{}

func (UnimplementedRoleServiceServer) CreateRole(context.Context, *CreateRoleRequest) (*CreateRoleResponse, error) {
	return nil, unimplemented("CreateRole")
}
func (UnimplementedRoleServiceServer) UpdateRole(context.Context, *UpdateRoleRequest) (*UpdateRoleResponse, error) {
	return nil, unimplemented("UpdateRole")
}
func (UnimplementedRoleServiceServer) DeleteRole(context.Context, *DeleteRoleRequest) (*DeleteRoleResponse, error) {
	return nil, unimplemented("DeleteRole")
}
func (UnimplementedRoleServiceServer) GetRole(context.Context, *GetRoleRequest) (*GetRoleResponse, error) {
	return nil, unimplemented("GetRole")
}
func (UnimplementedRoleServiceServer) ListRoles(context.Context, *ListRolesRequest) (*ListRolesResponse, error) {
	return nil, unimplemented("ListRoles")
}

// RoleService_ServiceDesc は talent.v1.RoleService のサービス定義です。
var RoleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: RoleServiceName,
	HandlerType: (*RoleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(RoleServiceName, "CreateRole", RoleServiceServer.CreateRole),
		method(RoleServiceName, "UpdateRole", RoleServiceServer.UpdateRole),
		method(RoleServiceName, "DeleteRole", RoleServiceServer.DeleteRole),
		method(RoleServiceName, "GetRole", RoleServiceServer.GetRole),
		method(RoleServiceName, "ListRoles", RoleServiceServer.ListRoles),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talent/v1/role.json",
}

// RegisterRoleServiceServer はサーバーに RoleService を登録します。
func RegisterRoleServiceServer(s grpc.ServiceRegistrar, srv RoleServiceServer) {
	s.RegisterService(&RoleService_ServiceDesc, srv)
}

// RoleServiceClient は talent.v1.RoleService のクライアントです。
type RoleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRoleServiceClient は RoleServiceClient を生成します。
func NewRoleServiceClient(cc grpc.ClientConnInterface) *RoleServiceClient {
	return &RoleServiceClient{cc: cc}
}

func (c *RoleServiceClient) CreateRole(ctx context.Context, in *CreateRoleRequest, opts ...grpc.CallOption) (*CreateRoleResponse, error) {
	return invoke[CreateRoleResponse](ctx, c.cc, RoleServiceName, "CreateRole", in, opts)
}
func (c *RoleServiceClient) UpdateRole(ctx context.Context, in *UpdateRoleRequest, opts ...grpc.CallOption) (*UpdateRoleResponse, error) {
	return invoke[UpdateRoleResponse](ctx, c.cc, RoleServiceName, "UpdateRole", in, opts)
}
func (c *RoleServiceClient) DeleteRole(ctx context.Context, in *DeleteRoleRequest, opts ...grpc.CallOption) (*DeleteRoleResponse, error) {
	return invoke[DeleteRoleResponse](ctx, c.cc, RoleServiceName, "DeleteRole", in, opts)
}
func (c *RoleServiceClient) GetRole(ctx context.Context, in *GetRoleRequest, opts ...grpc.CallOption) (*GetRoleResponse, error) {
	return invoke[GetRoleResponse](ctx, c.cc, RoleServiceName, "GetRole", in, opts)
}
func (c *RoleServiceClient) ListRoles(ctx context.Context, in *ListRolesRequest, opts ...grpc.CallOption) (*ListRolesResponse, error) {
	return invoke[ListRolesResponse](ctx, c.cc, RoleServiceName, "ListRoles", in, opts)
}

// CourseServiceServer は talent.v1.CourseService のサーバーインターフェースです。
type CourseServiceServer interface {
	CreateCourse(context.Context, *CreateCourseRequest) (*CreateCourseResponse, error)
	GetCourse(context.Context, *GetCourseRequest) (*GetCourseResponse, error)
	ListCourses(context.Context, *ListCoursesRequest) (*ListCoursesResponse, error)
	DeleteCourse(context.Context, *DeleteCourseRequest) (*DeleteCourseResponse, error)
}

// UnimplementedCourseServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedCourseServiceServer struct{}

func (UnimplementedCourseServiceServer) CreateCourse(context.Context, *CreateCourseRequest) (*CreateCourseResponse, error) {
	return nil, unimplemented("CreateCourse")
}
func (UnimplementedCourseServiceServer) GetCourse(context.Context, *GetCourseRequest) (*GetCourseResponse, error) {
	return nil, unimplemented("GetCourse")
}
func (UnimplementedCourseServiceServer) ListCourses(context.Context, *ListCoursesRequest) (*ListCoursesResponse, error) {
	return nil, unimplemented("ListCourses")
}
func (UnimplementedCourseServiceServer) DeleteCourse(context.Context, *DeleteCourseRequest) (*DeleteCourseResponse, error) {
	return nil, unimplemented("DeleteCourse")
}

// CourseService_ServiceDesc は talent.v1.CourseService のサービス定義です。
var CourseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CourseServiceName,
	HandlerType: (*CourseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(CourseServiceName, "CreateCourse", CourseServiceServer.CreateCourse),
		method(CourseServiceName, "GetCourse", CourseServiceServer.GetCourse),
		method(CourseServiceName, "ListCourses", CourseServiceServer.ListCourses),
		method(CourseServiceName, "DeleteCourse", CourseServiceServer.DeleteCourse),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talent/v1/course.json",
}

// RegisterCourseServiceServer はサーバーに CourseService を登録します。
func RegisterCourseServiceServer(s grpc.ServiceRegistrar, srv CourseServiceServer) {
	s.RegisterService(&CourseService_ServiceDesc, srv)
}

// CourseServiceClient は talent.v1.CourseService のクライアントです。
type CourseServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCourseServiceClient は CourseServiceClient を生成します。
func NewCourseServiceClient(cc grpc.ClientConnInterface) *CourseServiceClient {
	return &CourseServiceClient{cc: cc}
}

func (c *CourseServiceClient) CreateCourse(ctx context.Context, in *CreateCourseRequest, opts ...grpc.CallOption) (*CreateCourseResponse, error) {
	return invoke[CreateCourseResponse](ctx, c.cc, CourseServiceName, "CreateCourse", in, opts)
}
func (c *CourseServiceClient) GetCourse(ctx context.Context, in *GetCourseRequest, opts ...grpc.CallOption) (*GetCourseResponse, error) {
	return invoke[GetCourseResponse](ctx, c.cc, CourseServiceName, "GetCourse", in, opts)
}
func (c *CourseServiceClient) ListCourses(ctx context.Context, in *ListCoursesRequest, opts ...grpc.CallOption) (*ListCoursesResponse, error) {
	return invoke[ListCoursesResponse](ctx, c.cc, CourseServiceName, "ListCourses", in, opts)
}
func (c *CourseServiceClient) DeleteCourse(ctx context.Context, in *DeleteCourseRequest, opts ...grpc.CallOption) (*DeleteCourseResponse, error) {
	return invoke[DeleteCourseResponse](ctx, c.cc, CourseServiceName, "DeleteCourse", in, opts)
}

// RecommendationServiceServer は talent.v1.RecommendationService のサーバーインターフェースです。
type RecommendationServiceServer interface {
	CompareRole(context.Context, *CompareRoleRequest) (*CompareRoleResponse, error)
	GenerateRecommendation(context.Context, *GenerateRecommendationRequest) (*RecommendationResponse, error)
	GetRecommendation(context.Context, *GetRecommendationRequest) (*RecommendationResponse, error)
	ListRecommendations(context.Context, *ListRecommendationsRequest) (*ListRecommendationsResponse, error)
	AcceptRecommendation(context.Context, *TransitionRecommendationRequest) (*RecommendationResponse, error)
	StartRecommendation(context.Context, *TransitionRecommendationRequest) (*RecommendationResponse, error)
	CompleteRecommendation(context.Context, *TransitionRecommendationRequest) (*RecommendationResponse, error)
	UpdateItemProgress(context.Context, *UpdateItemProgressRequest) (*RecommendationResponse, error)
	CompleteItem(context.Context, *CompleteItemRequest) (*RecommendationResponse, error)
	ResetRecommendation(context.Context, *ResetRecommendationRequest) (*ResetRecommendationResponse, error)
}

// UnimplementedRecommendationServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedRecommendationServiceServer struct{}

func (UnimplementedRecommendationServiceServer) CompareRole(context.Context, *CompareRoleRequest) (*CompareRoleResponse, error) {
	return nil, unimplemented("CompareRole")
}
func (UnimplementedRecommendationServiceServer) GenerateRecommendation(context.Context, *GenerateRecommendationRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("GenerateRecommendation")
}
func (UnimplementedRecommendationServiceServer) GetRecommendation(context.Context, *GetRecommendationRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("GetRecommendation")
}
func (UnimplementedRecommendationServiceServer) ListRecommendations(context.Context, *ListRecommendationsRequest) (*ListRecommendationsResponse, error) {
	return nil, unimplemented("ListRecommendations")
}
func (UnimplementedRecommendationServiceServer) AcceptRecommendation(context.Context, *TransitionRecommendationRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("AcceptRecommendation")
}
func (UnimplementedRecommendationServiceServer) StartRecommendation(context.Context, *TransitionRecommendationRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("StartRecommendation")
}
func (UnimplementedRecommendationServiceServer) CompleteRecommendation(context.Context, *TransitionRecommendationRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("CompleteRecommendation")
}
func (UnimplementedRecommendationServiceServer) UpdateItemProgress(context.Context, *UpdateItemProgressRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("UpdateItemProgress")
}
func (UnimplementedRecommendationServiceServer) CompleteItem(context.Context, *CompleteItemRequest) (*RecommendationResponse, error) {
	return nil, unimplemented("CompleteItem")
}
func (UnimplementedRecommendationServiceServer) ResetRecommendation(context.Context, *ResetRecommendationRequest) (*ResetRecommendationResponse, error) {
	return nil, unimplemented("ResetRecommendation")
}

// RecommendationService_ServiceDesc は talent.v1.RecommendationService のサービス定義です。
var RecommendationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: RecommendationServiceName,
	HandlerType: (*RecommendationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method(RecommendationServiceName, "CompareRole", RecommendationServiceServer.CompareRole),
		method(RecommendationServiceName, "GenerateRecommendation", RecommendationServiceServer.GenerateRecommendation),
		method(RecommendationServiceName, "GetRecommendation", RecommendationServiceServer.GetRecommendation),
		method(RecommendationServiceName, "ListRecommendations", RecommendationServiceServer.ListRecommendations),
		method(RecommendationServiceName, "AcceptRecommendation", RecommendationServiceServer.AcceptRecommendation),
		method(RecommendationServiceName, "StartRecommendation", RecommendationServiceServer.StartRecommendation),
		method(RecommendationServiceName, "CompleteRecommendation", RecommendationServiceServer.CompleteRecommendation),
		method(RecommendationServiceName, "UpdateItemProgress", RecommendationServiceServer.UpdateItemProgress),
		method(RecommendationServiceName, "CompleteItem", RecommendationServiceServer.CompleteItem),
		method(RecommendationServiceName, "ResetRecommendation", RecommendationServiceServer.ResetRecommendation),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talent/v1/recommendation.json",
}

// RegisterRecommendationServiceServer はサーバーに RecommendationService を登録します。
func RegisterRecommendationServiceServer(s grpc.ServiceRegistrar, srv RecommendationServiceServer) {
	s.RegisterService(&RecommendationService_ServiceDesc, srv)
}

// RecommendationServiceClient は talent.v1.RecommendationService のクライアントです。
type RecommendationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRecommendationServiceClient は RecommendationServiceClient を生成します。
func NewRecommendationServiceClient(cc grpc.ClientConnInterface) *RecommendationServiceClient {
	return &RecommendationServiceClient{cc: cc}
}

func (c *RecommendationServiceClient) CompareRole(ctx context.Context, in *CompareRoleRequest, opts ...grpc.CallOption) (*CompareRoleResponse, error) {
	return invoke[CompareRoleResponse](ctx, c.cc, RecommendationServiceName, "CompareRole", in, opts)
}
func (c *RecommendationServiceClient) GenerateRecommendation(ctx context.Context, in *GenerateRecommendationRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "GenerateRecommendation", in, opts)
}
func (c *RecommendationServiceClient) GetRecommendation(ctx context.Context, in *GetRecommendationRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "GetRecommendation", in, opts)
}
func (c *RecommendationServiceClient) ListRecommendations(ctx context.Context, in *ListRecommendationsRequest, opts ...grpc.CallOption) (*ListRecommendationsResponse, error) {
	return invoke[ListRecommendationsResponse](ctx, c.cc, RecommendationServiceName, "ListRecommendations", in, opts)
}
func (c *RecommendationServiceClient) AcceptRecommendation(ctx context.Context, in *TransitionRecommendationRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "AcceptRecommendation", in, opts)
}
func (c *RecommendationServiceClient) StartRecommendation(ctx context.Context, in *TransitionRecommendationRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "StartRecommendation", in, opts)
}
func (c *RecommendationServiceClient) CompleteRecommendation(ctx context.Context, in *TransitionRecommendationRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "CompleteRecommendation", in, opts)
}
func (c *RecommendationServiceClient) UpdateItemProgress(ctx context.Context, in *UpdateItemProgressRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "UpdateItemProgress", in, opts)
}
func (c *RecommendationServiceClient) CompleteItem(ctx context.Context, in *CompleteItemRequest, opts ...grpc.CallOption) (*RecommendationResponse, error) {
	return invoke[RecommendationResponse](ctx, c.cc, RecommendationServiceName, "CompleteItem", in, opts)
}
func (c *RecommendationServiceClient) ResetRecommendation(ctx context.Context, in *ResetRecommendationRequest, opts ...grpc.CallOption) (*ResetRecommendationResponse, error) {
	return invoke[ResetRecommendationResponse](ctx, c.cc, RecommendationServiceName, "ResetRecommendation", in, opts)
}
