package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"macaron/internal/invite"
	"macaron/internal/ui"
)

func newInviteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Manage single-use invite codes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Generate a new invite code",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Key.Render(invite.Generate()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "redeem <code>",
			Short: "Redeem an invite code on this device",
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("code is required")
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()

				_, kv, cleanup, err := openStore(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				ledger := invite.NewLedger(kv)
				used, err := ledger.IsUsed(ctx, args[0])
				if err != nil {
					return err
				}
				if used {
					return fmt.Errorf("invite code %q is invalid or already used", args[0])
				}
				if err := ledger.MarkUsed(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconTicket+" Redeemed"))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List redeemed invite codes",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()

				_, kv, cleanup, err := openStore(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				codes, err := invite.NewLedger(kv).UsedCodes(ctx)
				if err != nil {
					return err
				}
				if len(codes) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No codes redeemed."))
					return nil
				}
				for _, c := range codes {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(c))
				}
				return nil
			},
		},
	)

	return cmd
}
