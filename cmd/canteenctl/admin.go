package main

import (
	"context"
	"fmt"
	"io"

	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Grant or revoke administrator access",
	}
	cmd.AddCommand(newAdminToggleCommand("grant", true), newAdminToggleCommand("revoke", false))

	return cmd
}

func newAdminToggleCommand(use string, admin bool) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s administrator access for the account registered under --email", use),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				provider service.IdentityProvider
				users    repository.UserRepository
			)

			return withBackend(cmd.Context(), func() error {
				return setAdmin(cmd.Context(), cmd.OutOrStdout(), provider, users, email, admin)
			}, &provider, &users)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address of the account")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// setAdmin resolves email to its profile and sets its administrator flag. The profile is
// created at sign-up, so an account that never signed up cannot be promoted.
func setAdmin(ctx context.Context, out io.Writer, provider service.IdentityProvider, users repository.UserRepository, email string, admin bool) error {
	identity, err := provider.LookupByEmail(ctx, email)
	if err != nil {
		return errors.Wrapf(err, "failed to find account %s", email)
	}

	profile, err := users.FindByID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Errorf("account %s has no profile yet", email)
		}

		return errors.Wrap(err, "failed to load profile")
	}

	if profile.AdminCheck == admin {
		fmt.Fprintf(out, "%s (%s) already has admin=%t\n", email, identity.UID, admin)

		return nil
	}

	if err := users.SetAdmin(ctx, identity.UID, admin); err != nil {
		return errors.Wrap(err, "failed to update profile")
	}
	fmt.Fprintf(out, "%s (%s) now has admin=%t\n", email, identity.UID, admin)

	return nil
}
