package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/smartsales365/terminal/internal/core/domain"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func renderProducts(w io.Writer, products []domain.Product) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Brand, p.Category, p.Price, p.Stock)
	}
	tw.Flush()
}

func renderClients(w io.Writer, clients []domain.Client) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tADDRESS\tNIT/CI")
	for _, c := range clients {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\t%s\n", c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.TaxID)
	}
	tw.Flush()
}

func renderSales(w io.Writer, sales []domain.Sale) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tCLIENT\tSELLER\tSTATUS\tTOTAL")
	for _, s := range sales {
		client := "-"
		if s.Client != nil {
			client = s.Client.FirstName + " " + s.Client.LastName
		}
		seller := s.SellerUsername
		if seller == "" {
			seller = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Date.Format("2006-01-02 15:04"), client, seller, s.Status.Label(), s.Total)
	}
	tw.Flush()
}

func renderCart(w io.Writer, lines []domain.CartLine, total domain.Money, itemCount int) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "cart is empty")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQTY\tUNIT PRICE\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", l.Product.ID, l.Product.Name, l.Quantity, l.Product.Price, l.Subtotal())
	}
	tw.Flush()
	fmt.Fprintf(w, "%d item(s), total %s\n", itemCount, total)
}
