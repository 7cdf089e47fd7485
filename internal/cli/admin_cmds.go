package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/ports"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "clients",
		Short:             "Administer client records",
		PersistentPreRunE: requireStaff(app),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(cmd.Context())
			if err != nil {
				return err
			}
			renderClients(app.out(), clients)
			return nil
		},
	}

	var input ports.ClientInput
	bindClientFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&input.FirstName, "name", "", "first name")
		c.Flags().StringVar(&input.LastName, "surname", "", "surname")
		c.Flags().StringVar(&input.Email, "email", "", "email")
		c.Flags().StringVar(&input.Phone, "phone", "", "phone")
		c.Flags().StringVar(&input.Address, "address", "", "address")
		c.Flags().StringVar(&input.TaxID, "nit", "", "NIT/CI")
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(input); err != nil {
				return err
			}
			created, err := app.Clients.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "client #%d created\n", created.ID)
			return nil
		},
	}
	bindClientFlags(create)

	update := &cobra.Command{
		Use:   "update <client-id>",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := checkForm(input); err != nil {
				return err
			}
			updated, err := app.Clients.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "client #%d updated\n", updated.ID)
			return nil
		},
	}
	bindClientFlags(update)

	del := &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "client #%d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}

// productForm backs the create/update flags with the same validation the
// hosted admin form applies before submitting.
type productForm struct {
	Name           string  `validate:"required"`
	Brand          string  `validate:"required"`
	Model          string
	Category       string  `validate:"required"`
	Description    string
	Price          float64 `validate:"gte=0"`
	Stock          int     `validate:"gte=0"`
	WarrantyMonths int     `validate:"gte=0"`
	ImagePath      string
}

func (f productForm) input() (ports.ProductInput, func(), error) {
	input := ports.ProductInput{
		Name:           f.Name,
		Brand:          f.Brand,
		Model:          f.Model,
		Category:       f.Category,
		Description:    f.Description,
		Price:          f.Price,
		Stock:          f.Stock,
		WarrantyMonths: f.WarrantyMonths,
	}
	cleanup := func() {}
	if f.ImagePath != "" {
		file, err := os.Open(f.ImagePath)
		if err != nil {
			return input, cleanup, fmt.Errorf("open image: %w", err)
		}
		cleanup = func() { file.Close() }
		input.Image = &ports.FileUpload{Name: filepath.Base(f.ImagePath), Reader: file}
	}
	return input, cleanup, nil
}

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "products",
		Short:             "Administer the product catalog",
		PersistentPreRunE: requireStaff(app),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			renderProducts(app.out(), products)
			return nil
		},
	}

	var form productForm
	bindProductFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&form.Name, "name", "", "product name")
		c.Flags().StringVar(&form.Brand, "brand", "", "brand")
		c.Flags().StringVar(&form.Model, "model", "", "model")
		c.Flags().StringVar(&form.Category, "category", "", "category")
		c.Flags().StringVar(&form.Description, "description", "", "description")
		c.Flags().Float64Var(&form.Price, "price", 0, "unit price")
		c.Flags().IntVar(&form.Stock, "stock", 0, "stock on hand")
		c.Flags().IntVar(&form.WarrantyMonths, "warranty-months", 12, "warranty in months")
		c.Flags().StringVar(&form.ImagePath, "image", "", "path to a product image")
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product (multipart, with optional image)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(form); err != nil {
				return err
			}
			input, cleanup, err := form.input()
			if err != nil {
				return err
			}
			defer cleanup()
			created, err := app.Products.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "product #%d (%s) created\n", created.ID, created.Name)
			return nil
		},
	}
	bindProductFlags(create)

	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := checkForm(form); err != nil {
				return err
			}
			input, cleanup, err := form.input()
			if err != nil {
				return err
			}
			defer cleanup()
			updated, err := app.Products.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "product #%d updated\n", updated.ID)
			return nil
		},
	}
	bindProductFlags(update)

	del := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Products.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "product #%d deleted\n", id)
			return nil
		},
	}

	upload := &cobra.Command{
		Use:   "bulk-upload <spreadsheet>",
		Short: "Create products in batch from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open spreadsheet: %w", err)
			}
			defer file.Close()
			result, err := app.Products.BulkUpload(cmd.Context(), ports.FileUpload{
				Name:   filepath.Base(args[0]),
				Reader: file,
			})
			if err != nil {
				return err
			}
			if result.Detail != "" {
				fmt.Fprintln(app.out(), result.Detail)
			}
			fmt.Fprintf(app.out(), "%d product(s) created\n", result.Created)
			for _, e := range result.Errors {
				fmt.Fprintf(app.out(), "  skipped: %s\n", e)
			}
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del, upload)
	return cmd
}
