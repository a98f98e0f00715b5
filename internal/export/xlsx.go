// Package export genera la planilla del catálogo de productos.
package export

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"industrial-catalog/internal/models"
)

const (
	productsSheet = "Products"
	specsSheet    = "Specifications"
)

var productHeader = []any{"ID", "Name", "Category", "Materials", "Applications", "Description", "Updated"}

// WriteProducts escribe un libro con una hoja de productos y otra con
// las especificaciones en formato largo (producto, clave, valor).
func WriteProducts(w io.Writer, products []models.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(specsSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(productsSheet, "A1", &productHeader); err != nil {
		return err
	}
	specHeader := []any{"Product ID", "Product", "Specification", "Value"}
	if err := f.SetSheetRow(specsSheet, "A1", &specHeader); err != nil {
		return err
	}

	specRow := 2
	for i, p := range products {
		row := []any{
			p.ID,
			p.Name,
			p.Category,
			strings.Join(p.Materials, ", "),
			strings.Join(p.Applications, ", "),
			p.Description,
			p.UpdatedAt.Format("2006-01-02"),
		}
		if err := f.SetSheetRow(productsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}

		keys := make([]string, 0, len(p.Specifications))
		for k := range p.Specifications {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			spec := []any{p.ID, p.Name, k, p.Specifications[k]}
			if err := f.SetSheetRow(specsSheet, fmt.Sprintf("A%d", specRow), &spec); err != nil {
				return err
			}
			specRow++
		}
	}

	if err := f.SetPanes(productsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}
