package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"train-xchange/config"
	"train-xchange/models"
	"train-xchange/services"
)

var searchOpts = models.DefaultCriteria()

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the ticket catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log, closeLog := setupLogger(cfg)
		defer closeLog()
		logConfigWarnings(log, cfg)

		store, closeStore, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		results, err := services.NewListingService(store).Search(cmd.Context(), searchOpts)
		if err != nil {
			return err
		}

		printCards(cmd.OutOrStdout(), services.RenderCards(results))
		return nil
	},
}

func init() {
	f := searchCmd.Flags()
	f.StringVarP(&searchOpts.From, "from", "f", "", "Origin station (substring)")
	f.StringVarP(&searchOpts.To, "to", "t", "", "Destination station (substring)")
	f.StringVarP(&searchOpts.Date, "date", "d", "", "Travel date, YYYY-MM-DD")
	f.IntVarP(&searchOpts.Passengers, "passengers", "p", searchOpts.Passengers, "Number of passengers")
	f.Float64Var(&searchOpts.MaxPrice, "max-price", searchOpts.MaxPrice, "Price ceiling in pounds, 0 for none")
	f.StringVarP((*string)(&searchOpts.SortBy), "sort", "s", string(searchOpts.SortBy), "Sort by price, time or date")
}

func printCards(w io.Writer, cards []models.ListingCard) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No tickets found")
		return
	}
	for _, card := range cards {
		fmt.Fprintf(w, "#%d  %s\n", card.Listing.ID, card.Route)
		fmt.Fprintf(w, "    %s\n", card.Journey)
		fmt.Fprintf(w, "    %s (was %s, save %s)  %s %s  %s %s\n",
			card.PriceLabel, card.OriginalLabel, card.SavingsLabel,
			card.Listing.Class, card.Listing.Type,
			card.Listing.Seller.Name, card.RatingStars)
	}
}
