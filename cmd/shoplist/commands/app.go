package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp builds the shoplist command tree.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:  "shoplist",
		Usage: "keep a shopping list with running tax-inclusive totals",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "path to an env file",
				Value: ".env",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "add a product",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "product name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "price",
						Aliases:  []string{"p"},
						Usage:    "price before tax, e.g. 3.50",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "category (defaults to Other)",
					},
				},
				Action: ProductAddAction,
			},
			{
				Name:  "edit",
				Usage: "edit a product; omitted fields keep their value",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "product ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "new name",
					},
					&cli.StringFlag{
						Name:    "price",
						Aliases: []string{"p"},
						Usage:   "new price",
					},
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "new category",
					},
				},
				Action: ProductEditAction,
			},
			{
				Name:      "rm",
				Usage:     "remove products by ID, or every product in a category",
				ArgsUsage: "[id...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "category",
						Aliases: []string{"c"},
						Usage:   "remove every product in this category",
					},
				},
				Action: ProductRemoveAction,
			},
			{
				Name:   "ls",
				Usage:  "list products",
				Action: ProductListAction,
			},
			{
				Name:      "search",
				Usage:     "list products whose name contains the query",
				ArgsUsage: "<query>",
				Action:    ProductSearchAction,
			},
			{
				Name:   "totals",
				Usage:  "show subtotal, tax and grand total",
				Action: TotalsAction,
			},
			{
				Name:   "chart",
				Usage:  "show spend per category",
				Action: ChartAction,
			},
			{
				Name:  "categories",
				Usage: "manage categories",
				Commands: []*cli.Command{
					{
						Name:   "ls",
						Usage:  "list categories",
						Action: CategoryListAction,
					},
					{
						Name:      "add",
						Usage:     "add a custom category",
						ArgsUsage: "<name>",
						Action:    CategoryAddAction,
					},
					{
						Name:      "rm",
						Usage:     "remove a custom category",
						ArgsUsage: "<name>",
						Action:    CategoryRemoveAction,
					},
				},
			},
		},
	}
}
