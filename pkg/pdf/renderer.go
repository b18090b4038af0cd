// Package pdf renders quotes and invoices as paginated PDF documents.
// The renderer receives an already-computed financial snapshot; it performs
// no calculation of its own.
package pdf

// Party holds the identity block printed for either side of a document.
type Party struct {
	Name    string
	Company string
	Address string
	Email   string
	Phone   string
	GSTIN   string
}

// LineItem is one priced row of the document's item table.
type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   string
	SubTotal    string
}

// TotalLine is one row of the totals box. Zero-percentage tax rows are
// omitted by the caller before rendering.
type TotalLine struct {
	Label    string
	Amount   string
	Emphasis bool
}

// Section is an optional structured block (bill of materials, SLA,
// timeline) rendered after the totals.
type Section struct {
	Title string
	Rows  []string
}

// Document is a complete, already-computed snapshot of a quote or invoice.
type Document struct {
	Title      string
	Number     string
	IssueDate  string
	SecondDate string // "Valid until" for quotes, "Due date" for invoices
	Currency   string

	From   Party
	BillTo Party

	Items    []LineItem
	Totals   []TotalLine
	Notes    string
	Terms    string
	Sections []Section
}

// Renderer produces a PDF from a document snapshot.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

// nullRenderer discards documents; used when rendering is disabled.
type nullRenderer struct{}

// NewNullRenderer returns a renderer that produces empty output.
func NewNullRenderer() Renderer {
	return &nullRenderer{}
}

func (nullRenderer) Render(doc Document) ([]byte, error) {
	return nil, nil
}
