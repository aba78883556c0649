// Package pdf genera la nota de empaque de un pedido con Maroto v2.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Pedido + Fecha          │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: Nombre / Teléfono / Dirección        │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Prenda | Talla | Color | Precio │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL + código de seguimiento                 │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/chichilu/closet-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// MarotoReceiptGenerator genera la nota de empaque de un pedido usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre de la tienda.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateOrderReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateOrderReceipt(_ context.Context, o *dto.OrderResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de empaque", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, it := range o.Items {
		m.AddRows(itemRow(it))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq), pedido y fecha (der).
func (g *MarotoReceiptGenerator) headerRow(o *dto.OrderResponse) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Pedido "+shortID(o.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(o.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Color: colorGray, Align: align.Right, Top: 7,
			}),
		),
	)
}

func customerRow(o *dto.OrderResponse) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(o.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(o.CustomerPhone, props.Text{Size: 9, Color: colorGray, Top: 7}),
			text.New(o.CustomerAddress, props.Text{Size: 9, Color: colorGray, Top: 11}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9}
	return row.New(6).Add(
		col.New(1).Add(text.New("Cant", header)),
		col.New(5).Add(text.New("Prenda", header)),
		col.New(2).Add(text.New("Talla", header)),
		col.New(2).Add(text.New("Color", header)),
		col.New(2).Add(text.New("Precio", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
	)
}

func itemRow(it dto.OrderItemResponse) core.Row {
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(1).Add(text.New(strconv.Itoa(it.Quantity), cell)),
		col.New(5).Add(text.New(it.ProductName, cell)),
		col.New(2).Add(text.New(it.Size, cell)),
		col.New(2).Add(text.New(it.Color, cell)),
		col.New(2).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func totalRow(o *dto.OrderResponse) core.Row {
	tracking := o.TrackingCode
	if tracking == "" {
		tracking = "-"
	}
	return row.New(12).Add(
		col.New(7).Add(
			text.New("Seguimiento: "+tracking, props.Text{Size: 9, Color: colorGray, Top: 2}),
		),
		col.New(5).Add(
			text.New("TOTAL  "+o.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
		),
	)
}

// shortID acorta el UUID para el encabezado (los pedidos se imprimen a mano).
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
