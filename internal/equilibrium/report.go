package equilibrium

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rickgao/cg-spread/internal/model"
)

// WriteReport prints the spread, ask and bid with four decimals.
func WriteReport(w io.Writer, r model.Result) error {
	_, err := fmt.Fprintf(w, "Equilibrium spread: %.4f\nAsk price: %.4f\nBid price: %.4f\n",
		r.Spread, r.Ask, r.Bid)
	return err
}

// WriteSweep prints one row per result: pi, spread, bid, ask.
func WriteSweep(w io.Writer, results []model.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "pi\tspread\tbid\task\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%.4f\t%.4f\t%.4f\t\n", r.Params.Pi, r.Spread, r.Bid, r.Ask)
	}
	return tw.Flush()
}
