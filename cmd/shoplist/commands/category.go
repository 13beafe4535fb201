package commands

import (
	"context"
	"fmt"
	"strings"

	"shoplist/internal/money"

	"github.com/urfave/cli/v3"
)

// CategoryListAction prints every category with its tax rate, built-ins first.
func CategoryListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	out := newTable(appCtx.Out, "Category", "Tax")
	for _, name := range appCtx.Service.Categories() {
		rate := money.Percent(appCtx.Tax.RateFor(name))
		if !appCtx.Tax.Has(name) {
			rate = money.Percent(appCtx.Tax.DefaultRate()) + " (default)"
		}
		if err := out.Append(name, rate); err != nil {
			return err
		}
	}
	return out.Render()
}

// CategoryAddAction registers a custom category.
func CategoryAddAction(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	added, err := appCtx.Service.AddCategory(ctx, name)
	if added {
		fmt.Fprintf(appCtx.Out, "Added category %s\n", name)
	} else if err == nil {
		fmt.Fprintf(appCtx.Out, "Category %s already exists\n", name)
	}
	return err
}

// CategoryRemoveAction removes a custom category. Products filed under it
// are kept.
func CategoryRemoveAction(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	appCtx, err := NewAppContext(ctx, cmd)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	removed, err := appCtx.Service.DeleteCategory(ctx, name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%s is not a custom category", name)
	}
	fmt.Fprintf(appCtx.Out, "Removed category %s\n", name)
	return nil
}
