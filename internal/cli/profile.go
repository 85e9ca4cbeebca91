package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-mike-s/foodmart/internal/models"
	"github.com/dev-mike-s/foodmart/internal/profile"
)

func newProfileCommand(opts *options) *cobra.Command {
	m := models.Member{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print a member profile card and check the member's age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, profile.Card(m, opts.now()))

			if err := profile.ValidateAge(m.Age); err != nil {
				fmt.Fprintln(out, "❌", err)
				return nil
			}
			fmt.Fprintf(out, "✅ Alter %d ist valide\n", m.Age)
			return nil
		},
	}

	cmd.Flags().StringVar(&m.Name, "name", "Max Mustermann", "member name")
	cmd.Flags().IntVar(&m.Age, "age", 28, "member age in years")
	cmd.Flags().BoolVar(&m.Premium, "premium", true, "premium membership")
	cmd.Flags().Float64Var(&m.Balance, "balance", 1234.56, "account balance in euro")
	cmd.Flags().IntVar(&m.MemberSince, "since", 2020, "year the membership started")

	return cmd
}
