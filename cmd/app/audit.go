package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fooding/cmd/fx/logger_fx"
	"fooding/internal/config"
	"fooding/internal/infra"
	"fooding/internal/repositories"
)

var auditPrune bool

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List accounts with their pantry sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logger_fx.New("warn")
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		dsn, err := config.LoadDatabase()
		if err != nil {
			return err
		}
		db, err := infra.InitPostgresql(dsn)
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db, logger)

		ctx := cmd.Context()
		accounts := repositories.NewAccountRepository(db)
		pantries := repositories.NewPantryRepository(db)

		list, err := accounts.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		counts, err := pantries.CountItemsByOwner(ctx)
		if err != nil {
			return fmt.Errorf("count pantry items: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tUSERNAME\tPROVIDER\tPANTRY ITEMS")
		for _, a := range list {
			email := a.Email
			if email == "" {
				email = "<missing>"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", email, a.Username, a.Provider, counts[a.Email])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if !auditPrune {
			return nil
		}
		deleted, err := accounts.DeleteWithoutEmail(ctx)
		if err != nil {
			return fmt.Errorf("prune accounts: %w", err)
		}
		logger.Warn("pruned accounts without email", zap.Int64("deleted", deleted))
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d account(s) without an email\n", deleted)
		return nil
	},
}

func init() {
	auditCmd.Flags().BoolVar(&auditPrune, "prune", false, "delete accounts that have no email")
	rootCmd.AddCommand(auditCmd)
}
