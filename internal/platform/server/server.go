package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/ogurasousui/codex-grpc-talent/internal/adapters/grpc/handler"
	talentv1 "github.com/ogurasousui/codex-grpc-talent/internal/adapters/grpc/talentv1"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Services はサーバーに登録するユースケースの集合です。
type Services struct {
	Users           user.UseCase
	Roles           role.UseCase
	Courses         course.UseCase
	Recommendations recommendation.UseCase
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
	logger     *zap.Logger
}

// Option は Server の構築オプションです。
type Option func(*options)

type options struct {
	meter       metric.Meter
	grpcOptions []grpc.ServerOption
}

// WithMeter はメトリクスの記録先を指定します。
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// WithGRPCOptions は追加の grpc.ServerOption を指定します。
func WithGRPCOptions(opts ...grpc.ServerOption) Option {
	return func(o *options) { o.grpcOptions = append(o.grpcOptions, opts...) }
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, svcs Services, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	serverOpts := append([]grpc.ServerOption{
		// Recovery を最内に置き、panic も Internal としてメトリクスとログに残します。
		grpc.ChainUnaryInterceptor(
			MetricsInterceptor(o.meter, logger),
			LoggingInterceptor(logger),
			RecoveryInterceptor(logger),
		),
	}, o.grpcOptions...)

	srv := grpc.NewServer(serverOpts...)
	talentv1.RegisterUserServiceServer(srv, handler.NewUserGrpcHandler(svcs.Users))
	talentv1.RegisterRoleServiceServer(srv, handler.NewRoleGrpcHandler(svcs.Roles))
	talentv1.RegisterCourseServiceServer(srv, handler.NewCourseGrpcHandler(svcs.Courses))
	talentv1.RegisterRecommendationServiceServer(srv, handler.NewRecommendationGrpcHandler(svcs.Recommendations))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	for _, name := range []string{
		talentv1.UserServiceName,
		talentv1.RoleServiceName,
		talentv1.CourseServiceName,
		talentv1.RecommendationServiceName,
	} {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     hs,
		logger:     logger,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は指定されたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
