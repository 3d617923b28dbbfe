package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adminPasswordEnv lets scripts pass the password without exposing it in the process list
const adminPasswordEnv = "BIZHUB_ADMIN_PASSWORD"

func newSeedCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert bootstrap data",
	}

	var username, email, password string
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Create the first admin account",
		Long: `Create an admin account. Self-registration cannot grant the admin role,
so every deployment bootstraps its first administrator with this command.

The password is read from --password or, when empty, from ` + adminPasswordEnv + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(adminPasswordEnv)
			}
			return c.seedAdmin(cmd.Context(), username, email, password)
		},
	}
	admin.Flags().StringVar(&username, "username", "admin", "admin username")
	admin.Flags().StringVar(&email, "email", "", "admin email")
	admin.Flags().StringVar(&password, "password", "", "admin password")

	var demoPassword string
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Load a small demo dataset for a business owner",
		Long: `Create the "demo" business owner with one company, a supplier, a customer,
a tax, three products with opening stock and a work center. Running it again is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withDatabase(func(db *persistence.Database) error {
				summary, err := seedDemo(cmd.Context(), db.DB, demoPassword, c.log)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), summary)
				return nil
			})
		},
	}
	demo.Flags().StringVar(&demoPassword, "password", "demo-pass1", "password for the demo user")

	cmd.AddCommand(admin, demo)
	return cmd
}

func (c *cli) withDatabase(fn func(db *persistence.Database) error) error {
	db, err := persistence.NewDatabase(&c.cfg.Database, persistence.Options{Logger: c.log})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return fn(db)
}

func (c *cli) seedAdmin(ctx context.Context, username, email, password string) error {
	if password == "" {
		return fmt.Errorf("a password is required (--password or %s)", adminPasswordEnv)
	}

	return c.withDatabase(func(db *persistence.Database) error {
		users := persistence.NewGormUserRepository(db.DB)
		existing, err := users.FindByUsername(ctx, username)
		switch {
		case err == nil:
			c.log.Info("Admin already exists", zap.String("username", existing.Username), zap.Int64("user_id", existing.ID))
			return nil
		case !errors.Is(err, shared.ErrNotFound):
			return err
		}

		user, err := identity.NewUser(username, email, password, identity.RoleAdmin, identity.UserTypeSeller)
		if err != nil {
			return err
		}
		if err := users.Save(ctx, user); err != nil {
			return err
		}
		c.log.Info("Admin created", zap.String("username", user.Username), zap.Int64("user_id", user.ID))
		return nil
	})
}
