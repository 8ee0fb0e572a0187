// Package app はサーバーと CLI が共有するコンポジションルートです。
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-grpc-talent/internal/adapters/repository/kvstore"
	"github.com/ogurasousui/codex-grpc-talent/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/course"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/config"
	pgdb "github.com/ogurasousui/codex-grpc-talent/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/db/sqlite"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/server"
	"go.uber.org/zap"
)

// App は設定されたストレージ上に組み立てたユースケースを保持します。
type App struct {
	Users           *user.Service
	Roles           *role.Service
	Courses         *course.Service
	Recommendations *recommendation.Service

	driver  string
	closers []func()
}

type repositories struct {
	users           user.Repository
	sessions        user.SessionStore
	roles           role.Repository
	courses         course.Repository
	recommendations recommendation.Repository
	tx              recommendation.TransactionManager
}

// New は cfg.Storage.Driver に従ってストレージを開き、ユースケースを組み立てます。
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{driver: cfg.Storage.Driver}

	var (
		repos repositories
		err   error
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		repos, err = a.openPostgres(ctx, cfg.Database, logger)
	case config.DriverSQLite:
		repos, err = a.openSQLite(ctx, cfg.Storage.SQLite, logger)
	default:
		err = fmt.Errorf("app: unsupported storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Users = user.NewService(repos.users, repos.sessions, nil)
	a.Roles = role.NewService(repos.roles, nil, repos.tx)
	a.Courses = course.NewService(repos.courses, nil)
	a.Recommendations = recommendation.NewService(
		repos.recommendations,
		a.Users,
		a.Roles,
		a.Courses,
		nil,
		repos.tx,
		logger.Named("recommendation"),
	)

	return a, nil
}

func (a *App) openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (repositories, error) {
	pool, err := pgdb.NewPool(ctx, cfg, logger)
	if err != nil {
		return repositories{}, fmt.Errorf("app: %w", err)
	}
	a.closers = append(a.closers, pool.Close)

	return repositories{
		users:           postgres.NewUserRepository(pool),
		sessions:        postgres.NewSessionStore(pool),
		roles:           postgres.NewRoleRepository(pool),
		courses:         postgres.NewCourseRepository(pool),
		recommendations: postgres.NewRecommendationRepository(pool),
		tx:              pgdb.NewTransactionManager(pool, pgdb.WithIsoLevel(pgx.Serializable)),
	}, nil
}

func (a *App) openSQLite(ctx context.Context, cfg config.SQLiteConfig, logger *zap.Logger) (repositories, error) {
	db, err := sqlite.Open(ctx, cfg.Path)
	if err != nil {
		return repositories{}, fmt.Errorf("app: %w", err)
	}
	a.closers = append(a.closers, func() { _ = db.Close() })

	store, err := kvstore.New(ctx, db)
	if err != nil {
		return repositories{}, fmt.Errorf("app: %w", err)
	}
	logger.Info("kvstore opened", zap.String("path", cfg.Path))

	return repositories{
		users:           store.Users(),
		sessions:        store.Sessions(),
		roles:           store.Roles(),
		courses:         store.Courses(),
		recommendations: store.Recommendations(),
	}, nil
}

// Driver は使用中のストレージドライバ名を返します。
func (a *App) Driver() string {
	return a.driver
}

// Services は gRPC サーバーへ登録するユースケースを返します。
func (a *App) Services() server.Services {
	return server.Services{
		Users:           a.Users,
		Roles:           a.Roles,
		Courses:         a.Courses,
		Recommendations: a.Recommendations,
	}
}

// Close は開いたストレージを後から開いた順に閉じます。
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
