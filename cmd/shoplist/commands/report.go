package commands

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"shoplist/internal/money"

	"github.com/urfave/cli/v3"
)

const chartWidth = 30

// TotalsAction prints the cost breakdown of the list.
func TotalsAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	summary := appCtx.Service.Summary()

	savedAt := "never"
	if !summary.SavedAt.IsZero() {
		savedAt = summary.SavedAt.Local().Format(time.DateTime)
	}

	out := newTable(appCtx.Out, "", "Amount")
	rows := [][]any{
		{"Items", fmt.Sprintf("%d", summary.ItemCount)},
		{"Subtotal", appCtx.Money(summary.Subtotal)},
		{"Tax", appCtx.Money(summary.TaxTotal)},
		{"Total", appCtx.Money(summary.GrandTotal)},
		{"Last saved", savedAt},
	}
	for _, row := range rows {
		if err := out.Append(row...); err != nil {
			return err
		}
	}
	return out.Render()
}

// ChartAction prints the pre-tax spend per category as a bar chart.
func ChartAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	totals := appCtx.Service.CategoryTotals()
	if len(totals) == 0 {
		fmt.Fprintln(appCtx.Out, "No products.")
		return nil
	}

	out := newTable(appCtx.Out, "Category", "Items", "Total", "Share", "")
	for _, t := range totals {
		if err := out.Append(
			t.Category,
			fmt.Sprintf("%d", len(t.Products)),
			appCtx.Money(t.Total),
			money.Percent(t.Share),
			bar(t.Share),
		); err != nil {
			return err
		}
	}
	return out.Render()
}

func bar(share float64) string {
	n := int(math.Round(share * chartWidth))
	if n == 0 && share > 0 {
		n = 1
	}
	return strings.Repeat("#", n)
}
