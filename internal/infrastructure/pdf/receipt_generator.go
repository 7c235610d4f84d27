// Package pdf gera o comprovante em PDF de um serviço realizado (ordem de
// serviço): cabeçalho com o negócio, dados do cliente, tabela de produtos
// consumidos e bloco de totais, em página A4.
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/gestorpro/gestor-api/internal/application/fulfillment"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator gera o comprovante de serviço realizado usando Maroto v2.
type ReceiptGenerator struct {
	businessName string
}

var _ fulfillment.ReceiptGenerator = (*ReceiptGenerator)(nil)

// NewReceiptGenerator constrói o gerador com o nome do negócio no cabeçalho.
func NewReceiptGenerator(businessName string) *ReceiptGenerator {
	return &ReceiptGenerator{businessName: businessName}
}

// Generate gera o PDF e devolve seus bytes.
func (g *ReceiptGenerator) Generate(_ context.Context, svc *entity.ServiceRealized, items []fulfillment.ItemForReceipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ordem de Serviço", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(svc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(svc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(items) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range tableItemRows(items) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(totalsRow(svc))

	if svc.Notes != "" {
		m.AddRows(notesRow(svc))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome do negócio (esq) e identificação da OS + data (dir).
func (g *ReceiptGenerator) headerRow(svc *entity.ServiceRealized) core.Row {
	date := svc.ServiceDate.Format("02/01/2006")
	shortID := svc.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ordem de serviço", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("OS "+strings.ToUpper(shortID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Data: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// clientRow: cliente e descrição do serviço.
func clientRow(svc *entity.ServiceRealized) core.Row {
	description := svc.Description
	if description == "" {
		description = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(svc.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Serviço: "+description, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de produtos consumidos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 6, align.Left),
		h("Preço unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: uma linha por item.
func tableItemRows(items []fulfillment.ItemForReceipt) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Item.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(it.Item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(it.Item.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(svc *entity.ServiceRealized) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(24).Add(
		col.New(3),
		col.New(4).Add(
			label("Serviço:", 2),
			label("Produtos:", 8),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 16,
			}),
		),
		col.New(4).Add(
			value(formatMoney(svc.ServiceValue), 2),
			value(formatMoney(svc.ProductsValue), 8),
			text.New(formatMoney(svc.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 16,
			}),
		),
		col.New(1),
	)
}

// notesRow: observações livres no rodapé.
func notesRow(svc *entity.ServiceRealized) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Observações", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(svc.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// formatMoney formata um decimal como moeda pt-BR: 1234.5 -> "R$ 1.234,50".
func formatMoney(v decimal.Decimal) string {
	s := v.StringFixed(2) // ex.: 1234.50
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
