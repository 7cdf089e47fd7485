package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   "Browse the product catalog",
		PreRunE: requireSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			if search != "" {
				products = filterProducts(products, search)
			}
			if len(products) == 0 {
				fmt.Fprintln(app.out(), "no products found")
				return nil
			}
			renderProducts(app.out(), products)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, brand or category")
	return cmd
}

// filterProducts applies the catalog search box semantics: case-insensitive
// substring match over name, brand and category.
func filterProducts(products []domain.Product, term string) []domain.Product {
	term = strings.ToLower(term)
	var matched []domain.Product
	for _, p := range products {
		haystack := strings.ToLower(p.Name + " " + p.Brand + " " + p.Category)
		if strings.Contains(haystack, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show cart contents and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCart(app.out(), app.Cart.Lines(), app.Cart.Total(), app.Cart.ItemCount())
			return nil
		},
	}

	var qty int
	add := &cobra.Command{
		Use:     "add <product-id>",
		Short:   "Add a product to the cart",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			products, err := app.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			var product *domain.Product
			for i := range products {
				if products[i].ID == id {
					product = &products[i]
					break
				}
			}
			if product == nil {
				return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
			}
			changed, err := app.Cart.Add(product.Ref(), qty)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(app.out(), "stock limit reached for %s, cart unchanged\n", product.Name)
				return nil
			}
			fmt.Fprintf(app.out(), "added %s (cart: %d item(s), %s)\n", product.Name, app.Cart.ItemCount(), app.Cart.Total())
			return nil
		},
	}
	add.Flags().IntVarP(&qty, "qty", "q", 1, "quantity to add")

	set := &cobra.Command{
		Use:   "set <product-id> <qty>",
		Short: "Set a line's quantity; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			newQty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := app.Cart.SetQuantity(id, newQty); err != nil {
				return err
			}
			renderCart(app.out(), app.Cart.Lines(), app.Cart.Total(), app.Cart.ItemCount())
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Cart.Remove(id); err != nil {
				return err
			}
			renderCart(app.out(), app.Cart.Lines(), app.Cart.Total(), app.Cart.ItemCount())
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cart.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(app.out(), "cart cleared")
			return nil
		},
	}

	cmd.AddCommand(show, add, set, remove, clear)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
