package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-mike-s/foodmart/internal/checkout"
	"github.com/dev-mike-s/foodmart/internal/models"
)

func newReceiptCommand(opts *options) *cobra.Command {
	var req models.ReceiptRequest

	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Print the receipt for a single product",
		Example: `  foodmart receipt
  foodmart receipt --product "tote bag" --address "New York"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := opts.app.Checkout.Checkout(cmd.Context(), req)
			if err != nil {
				return err
			}
			opts.log.Debug("receipt created", "receipt_id", receipt.ID, "total", receipt.Total)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, checkout.PreOrderNotice(receipt.Product))
			fmt.Fprintln(out)
			if notice := checkout.ShippingNotice(receipt.Shipping); notice != "" {
				fmt.Fprintln(out, notice)
			}
			fmt.Fprint(out, checkout.Render(*receipt))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ProductName, "product", checkout.DefaultProductName, "name of the product to buy")
	cmd.Flags().StringVar(&req.ShippingAddress, "address", "", "shipping address (env SHIPPING_ADDRESS)")

	return cmd
}
