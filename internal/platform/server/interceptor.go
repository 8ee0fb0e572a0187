package server

import (
	"context"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const meterName = "github.com/ogurasousui/codex-grpc-talent/internal/platform/server"

// RecoveryInterceptor はハンドラ内の panic を捕捉し Internal を返します。
func RecoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("grpc: panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				resp = nil
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// LoggingInterceptor はメソッド名・ステータスコード・処理時間を記録します。
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("latency", time.Since(start)),
		}
		switch code {
		case codes.OK:
			logger.Info("grpc: request handled", fields...)
		case codes.Internal, codes.Unknown, codes.Unavailable:
			logger.Error("grpc: request failed", append(fields, zap.Error(err))...)
		default:
			logger.Warn("grpc: request rejected", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

// MetricsInterceptor はリクエスト数とレイテンシを OpenTelemetry に記録します。
// meter が nil の場合はグローバルの MeterProvider を使用します。
func MetricsInterceptor(meter metric.Meter, logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(meterName)
	}

	requests, requestsErr := meter.Int64Counter(
		"talent.rpc.requests",
		metric.WithDescription("Count of handled gRPC requests"),
	)
	if requestsErr != nil {
		logger.Warn("server: unable to register request counter", zap.Error(requestsErr))
	}

	latency, latencyErr := meter.Float64Histogram(
		"talent.rpc.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for gRPC requests"),
	)
	if latencyErr != nil {
		logger.Warn("server: unable to register latency metric", zap.Error(latencyErr))
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := metric.WithAttributes(
			attribute.String("rpc.method", info.FullMethod),
			attribute.String("rpc.code", status.Code(err).String()),
		)
		if requestsErr == nil {
			requests.Add(ctx, 1, attrs)
		}
		if latencyErr == nil {
			latency.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), attrs)
		}
		return resp, err
	}
}
