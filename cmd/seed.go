// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/canonical/agency-service/internal/config"
	"github.com/canonical/agency-service/pkg/seed"
)

// seedCmd creates the demo agency and, optionally, a super admin
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Ensure the demo agency exists",
	Long:  `Ensure the demo agency exists, running it again is a no-op`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().String("super-admin-id", "", "Identity ID to register as super admin")
	seedCmd.Flags().String("super-admin-email", "", "Email of the super admin")
	seedCmd.MarkFlagsRequiredTogether("super-admin-id", "super-admin-email")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	specs, err := config.Load(envFile)
	if err != nil {
		return err
	}

	i, err := newInfra(cmd.Context(), specs)
	if err != nil {
		return err
	}
	defer i.Close()

	seeder := seed.NewSeeder(i.db, i.storage, i.authorizer, i.tracer, i.monitor, i.logger)

	agency, err := seeder.EnsureSeedData(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("Agency %s (%s) is ready\n", agency.Name, agency.Slug)

	id, _ := cmd.Flags().GetString("super-admin-id")
	email, _ := cmd.Flags().GetString("super-admin-email")

	if id == "" {
		return nil
	}

	user, err := seeder.EnsureSuperAdmin(cmd.Context(), id, email)
	if err != nil {
		return err
	}

	cmd.Printf("Super admin %s (%s) is ready\n", user.ID, user.Email)
	return nil
}
