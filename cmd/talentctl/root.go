package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ogurasousui/codex-grpc-talent/internal/app"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/config"
	"github.com/ogurasousui/codex-grpc-talent/internal/platform/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli はコマンド間で共有する状態です。app はコマンド実行直前に開きます。
type cli struct {
	configPath string
	out        io.Writer
	app        *app.App
	logger     *zap.Logger
}

func execute(args []string, out io.Writer) error {
	c := &cli{out: out}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "talentctl",
		Short:         "Talent skill-gap analysis and learning path CLI",
		Long:          "talentctl manages employee profiles, target roles and learning-path recommendations directly on the configured store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return c.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")

	root.AddCommand(
		c.seedCmd(),
		c.usersCmd(),
		c.rolesCmd(),
		c.useCmd(),
		c.whoamiCmd(),
		c.compareCmd(),
		c.recommendCmd(),
		c.recommendationsCmd(),
		c.transitionCmd("accept", "Accept a pending recommendation", c.acceptFn),
		c.transitionCmd("start", "Start working on a recommendation", c.startFn),
		c.transitionCmd("complete", "Mark a recommendation as completed", c.completeFn),
		c.progressCmd(),
		c.resetCmd(),
	)
	return root
}

func needsStore(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		switch cmd.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd:
			return false
		}
	}
	return true
}

func (c *cli) open(ctx context.Context) error {
	if c.app != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(config.ResolvePath(c.configPath))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	c.logger = logger

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
		c.app = nil
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

// employeeID は --employee が空の場合にカレントユーザーの ID を返します。
func (c *cli) employeeID(ctx context.Context, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	u, err := c.app.Users.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("no --employee given: %w (run `talentctl use <user-id>`)", err)
	}
	return u.ID, nil
}
