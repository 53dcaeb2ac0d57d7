package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/product-catalog/internal/form"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

// writeTable prints rows numbered from 1; the number is what edit and
// delete take.
func writeTable(w io.Writer, rows []model.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tID\tTITLE\tPRICE\tTAXES\tADS\tDISCOUNT\tTOTAL\tCATEGORY")
	for i, p := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			p.ID,
			p.Title,
			p.Price.StringFixed(2),
			orDash(p.Taxes),
			orDash(p.Ads),
			orDash(p.Discount),
			p.Total.StringFixed(2),
			p.Category,
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

func orDash(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return d.StringFixed(2)
}

func writeDraft(w io.Writer, d form.Draft, mode form.Mode) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "mode\t%s\n", mode)
	for _, field := range form.Fields {
		fmt.Fprintf(tw, "%s\t%s\n", field, d.Get(field))
	}
	fmt.Fprintf(tw, "total\t%s\n", d.Total())

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush draft: %w", err)
	}
	return nil
}
