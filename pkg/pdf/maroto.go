package pdf

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type marotoRenderer struct{}

// NewMarotoRenderer returns the production PDF renderer.
func NewMarotoRenderer() Renderer {
	return &marotoRenderer{}
}

func (r *marotoRenderer) Render(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, doc.Title, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, doc.Number, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   3,
		}),
	)

	m.AddRow(12,
		col.New(8).Add(
			text.New("Date: "+doc.IssueDate, props.Text{Size: 9}),
			text.New(doc.SecondDate, props.Text{Size: 9, Top: 4}),
		),
		col.New(4),
	)

	m.AddRow(36,
		partyCol(6, "From", doc.From),
		partyCol(6, "Bill to", doc.BillTo),
	)

	m.AddRow(2, line.NewCol(12))

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(1, line.NewCol(12))

	for _, item := range doc.Items {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.SubTotal, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(2, line.NewCol(12))

	for _, total := range doc.Totals {
		style := fontstyle.Normal
		size := 9.0
		if total.Emphasis {
			style = fontstyle.Bold
			size = 11
		}
		m.AddRow(7,
			col.New(6),
			text.NewCol(3, total.Label, props.Text{Style: style, Size: size}),
			text.NewCol(3, total.Amount, props.Text{Style: style, Size: size, Align: align.Right}),
		)
	}

	for _, section := range doc.Sections {
		m.AddRow(10,
			text.NewCol(12, section.Title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}),
		)
		for _, row := range section.Rows {
			m.AddRow(6,
				text.NewCol(12, row, props.Text{Size: 9}),
			)
		}
	}

	if doc.Notes != "" {
		m.AddRow(10, text.NewCol(12, "Notes", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}))
		addParagraph(m, doc.Notes)
	}
	if doc.Terms != "" {
		m.AddRow(10, text.NewCol(12, "Terms & Conditions", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}))
		addParagraph(m, doc.Terms)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return generated.GetBytes(), nil
}

func partyCol(size int, label string, p Party) core.Col {
	lines := []core.Component{
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9}),
	}
	top := 5.0
	add := func(s string) {
		if s == "" {
			return
		}
		lines = append(lines, text.New(s, props.Text{Size: 9, Top: top}))
		top += 4
	}
	add(p.Name)
	add(p.Company)
	add(p.Address)
	add(p.Email)
	add(p.Phone)
	if p.GSTIN != "" {
		add("GSTIN: " + p.GSTIN)
	}
	return col.New(size).Add(lines...)
}

func addParagraph(m core.Maroto, body string) {
	for _, ln := range strings.Split(body, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		m.AddRow(5, text.NewCol(12, ln, props.Text{Size: 9}))
	}
}
