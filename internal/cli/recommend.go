package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-mike-s/foodmart/internal/recommender"
)

func newRecommendCommand(opts *options) *cobra.Command {
	var (
		price       string
		maxDelivery int
		maxDistance float64
		hour        int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Find restaurants that are affordable, close and open",
		Example: `  foodmart recommend
  foodmart recommend --price '$' --max-distance 5
  foodmart recommend --hour 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bracket, err := recommender.ParsePriceBracket(price)
			if err != nil {
				return err
			}

			criteria := recommender.Criteria{
				MaxPriceBracket:    bracket,
				MaxDeliveryMinutes: maxDelivery,
				MaxDistance:        maxDistance,
			}

			svc := opts.app.Recommendations
			if !cmd.Flags().Changed("hour") {
				hour = svc.CurrentHour()
			}

			rec, err := svc.RecommendAt(cmd.Context(), criteria, hour)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, rec.Message)
			fmt.Fprintln(out, rec.Hour)
			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", recommender.DefaultPrice, "price ceiling as dollar signs")
	cmd.Flags().IntVar(&maxDelivery, "max-delivery", recommender.DefaultMaxDeliveryMinutes, "maximum delivery time in minutes")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", recommender.DefaultMaxDistance, "maximum distance")
	cmd.Flags().IntVar(&hour, "hour", 0, "hour of day to check opening times against (default: now)")

	return cmd
}
