package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"shoplist/internal/aggregate"
	"shoplist/internal/model"
	"shoplist/internal/money"
	"shoplist/internal/tax"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// ProductAddAction adds a product to the list.
func ProductAddAction(ctx context.Context, cmd *cli.Command) error {
	price, err := money.ParsePrice(cmd.String("price"))
	if err != nil {
		return err
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	product, err := appCtx.Service.Add(ctx, cmd.String("name"), price, cmd.String("category"))
	if product != nil {
		fmt.Fprintf(appCtx.Out, "Added %s (%s) %s in %s\n",
			product.Name, product.ID, appCtx.Money(product.Price), product.Category)
	}
	return err
}

// ProductEditAction edits a product. Fields whose flag is not given keep
// their current value.
func ProductEditAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	id := cmd.String("id")
	current, ok := findProduct(appCtx.Service.List(), id)
	if !ok {
		return fmt.Errorf("%s: %w", id, model.ErrProductNotFound)
	}

	name, price, category := current.Name, current.Price, current.Category
	if cmd.IsSet("name") {
		name = cmd.String("name")
	}
	if cmd.IsSet("price") {
		if price, err = money.ParsePrice(cmd.String("price")); err != nil {
			return err
		}
	}
	if cmd.IsSet("category") {
		category = cmd.String("category")
	}

	product, err := appCtx.Service.Edit(ctx, id, name, price, category)
	if product != nil {
		fmt.Fprintf(appCtx.Out, "Updated %s (%s) %s in %s\n",
			product.Name, product.ID, appCtx.Money(product.Price), product.Category)
	}
	return err
}

// ProductRemoveAction removes products by ID or by category.
func ProductRemoveAction(ctx context.Context, cmd *cli.Command) error {
	ids := cmd.Args().Slice()
	category := strings.TrimSpace(cmd.String("category"))
	if len(ids) == 0 && category == "" {
		return fmt.Errorf("give at least one product ID or --category")
	}
	if len(ids) > 0 && category != "" {
		return fmt.Errorf("give product IDs or --category, not both")
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	var removed int
	switch {
	case category != "":
		removed, err = appCtx.Service.RemoveCategory(ctx, category)
	case len(ids) == 1:
		if err = appCtx.Service.Remove(ctx, ids[0]); errors.Is(err, model.ErrProductNotFound) {
			return fmt.Errorf("%s: %w", ids[0], err)
		}
		removed = 1
	default:
		removed, err = appCtx.Service.RemoveMany(ctx, ids)
	}

	fmt.Fprintf(appCtx.Out, "Removed %d product(s)\n", removed)
	return err
}

// ProductListAction prints every product with its tax-inclusive price.
func ProductListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	return renderProducts(appCtx, appCtx.Service.List())
}

// ProductSearchAction prints the products whose name contains the query.
func ProductSearchAction(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search query is required")
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	return renderProducts(appCtx, appCtx.Service.Search(query))
}

func renderProducts(appCtx *AppContext, products []model.Product) error {
	if len(products) == 0 {
		fmt.Fprintln(appCtx.Out, "No products.")
		return nil
	}

	rates := tax.Default()
	out := newTable(appCtx.Out, "ID", "Name", "Category", "Price", "With tax")
	for _, p := range products {
		if err := out.Append(
			p.ID,
			p.Name,
			p.Category,
			appCtx.Money(p.Price),
			appCtx.Money(aggregate.ItemTotal(p, rates)),
		); err != nil {
			return err
		}
	}
	return out.Render()
}

func findProduct(products []model.Product, id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func newTable(w io.Writer, headers ...any) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Header(headers...)
	return table
}
