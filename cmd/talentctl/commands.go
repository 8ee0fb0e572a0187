package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ogurasousui/codex-grpc-talent/internal/core/recommendation"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/role"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/sample"
	"github.com/ogurasousui/codex-grpc-talent/internal/core/user"
	"github.com/spf13/cobra"
)

func (c *cli) seedCmd() *cobra.Command {
	var (
		users int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load deterministic sample employees, roles and courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := sample.Seed(cmd.Context(), sample.NewGenerator(seed), c.app.Users, c.app.Roles, c.app.Courses, users)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "seeded %d users, %d roles, %d courses\n", counts.Users, counts.Roles, counts.Courses)
			return nil
		},
	}
	cmd.Flags().IntVar(&users, "users", 20, "number of employees to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	return cmd
}

func (c *cli) usersCmd() *cobra.Command {
	var (
		department string
		status     string
		pageSize   int
		pageToken  string
	)
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := user.ListUsersInput{PageSize: pageSize, PageToken: pageToken, Department: department}
			if status != "" {
				s := user.Status(status)
				in.Status = &s
			}
			result, err := c.app.Users.ListUsers(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printUsers(c.out, result.Users, result.NextPageToken)
		},
	}
	cmd.Flags().StringVar(&department, "department", "", "filter by department")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active|inactive)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (default 50)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "page token from a previous call")
	return cmd
}

func (c *cli) rolesCmd() *cobra.Command {
	var (
		department string
		pageSize   int
		pageToken  string
	)
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List target roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Roles.ListRoles(cmd.Context(), role.ListRolesInput{
				PageSize:   pageSize,
				PageToken:  pageToken,
				Department: department,
			})
			if err != nil {
				return err
			}
			return printRoles(c.out, result.Roles, result.NextPageToken)
		},
	}
	cmd.Flags().StringVar(&department, "department", "", "filter by department")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size (default 50)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "page token from a previous call")
	return cmd
}

func (c *cli) useCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <user-id>",
		Short: "Set the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.app.Users.SetCurrentUser(cmd.Context(), user.SetCurrentUserInput{ID: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "current user: %s <%s>\n", u.Name, u.Email)
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := c.app.Users.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			return printProfile(c.out, u)
		},
	}
}

func (c *cli) compareCmd() *cobra.Command {
	var employee string
	cmd := &cobra.Command{
		Use:   "compare <role>",
		Short: "Compare an employee against a target role without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.employeeID(cmd.Context(), employee)
			if err != nil {
				return err
			}
			cmp, err := c.app.Recommendations.Compare(cmd.Context(), recommendation.CompareInput{EmployeeID: id, Role: args[0]})
			if err != nil {
				return err
			}
			return printComparison(c.out, cmp)
		},
	}
	cmd.Flags().StringVar(&employee, "employee", "", "employee id (defaults to the current user)")
	return cmd
}

func (c *cli) recommendCmd() *cobra.Command {
	var (
		employee string
		refresh  bool
	)
	cmd := &cobra.Command{
		Use:   "recommend <role>",
		Short: "Generate (or fetch) the learning-path recommendation for a target role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.employeeID(cmd.Context(), employee)
			if err != nil {
				return err
			}
			rec, err := c.app.Recommendations.Generate(cmd.Context(), recommendation.GenerateInput{
				EmployeeID: id,
				Role:       args[0],
				Refresh:    refresh,
			})
			if err != nil {
				return err
			}
			return printRecommendation(c.out, rec)
		},
	}
	cmd.Flags().StringVar(&employee, "employee", "", "employee id (defaults to the current user)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute the analysis and reset the status to pending")
	return cmd
}

func (c *cli) recommendationsCmd() *cobra.Command {
	var (
		employee string
		status   string
		all      bool
	)
	cmd := &cobra.Command{
		Use:   "recommendations",
		Short: "List saved recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := recommendation.ListInput{}
			if !all {
				id, err := c.employeeID(cmd.Context(), employee)
				if err != nil {
					return err
				}
				in.EmployeeID = id
			}
			if status != "" {
				s := recommendation.Status(status)
				in.Status = &s
			}
			result, err := c.app.Recommendations.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printRecommendations(c.out, result.Recommendations, result.NextPageToken)
		},
	}
	cmd.Flags().StringVar(&employee, "employee", "", "employee id (defaults to the current user)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().BoolVar(&all, "all", false, "list recommendations of every employee")
	return cmd
}

type transitionFn func(ctx context.Context, id string) (*recommendation.Recommendation, error)

func (c *cli) acceptFn(ctx context.Context, id string) (*recommendation.Recommendation, error) {
	return c.app.Recommendations.Accept(ctx, recommendation.TransitionInput{ID: id})
}

func (c *cli) startFn(ctx context.Context, id string) (*recommendation.Recommendation, error) {
	return c.app.Recommendations.Start(ctx, recommendation.TransitionInput{ID: id})
}

func (c *cli) completeFn(ctx context.Context, id string) (*recommendation.Recommendation, error) {
	return c.app.Recommendations.Complete(ctx, recommendation.TransitionInput{ID: id})
}

func (c *cli) transitionCmd(use, short string, fn transitionFn) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <recommendation-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := fn(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s\t%s\n", rec.ID, rec.Status)
			return nil
		},
	}
}

func (c *cli) progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <recommendation-id> <item-id> <0-100>",
		Short: "Record progress on a learning item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("progress must be an integer: %w", recommendation.ErrInvalidProgress)
			}
			rec, err := c.app.Recommendations.UpdateItemProgress(cmd.Context(), recommendation.UpdateItemProgressInput{
				RecommendationID: args[0],
				ItemID:           args[1],
				Progress:         progress,
			})
			if err != nil {
				return err
			}
			return printLearningPath(c.out, rec.LearningPath)
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <recommendation-id>",
		Short: "Delete a recommendation so it can be generated again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Recommendations.Reset(cmd.Context(), recommendation.ResetInput{ID: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted %s\n", args[0])
			return nil
		},
	}
}
