package parser

import (
	"testing"
)

const htmlWithTable = `
<div class="screener-table yf-hm80y7">
	<div class="total yf-c259ju">1-25 of 1067</div>
	<table class="yf-1uayyp1 bd">
		<tbody>
			<tr><td>0</td><td>AAPL</td><td>Apple Inc</td><td>x</td><td>150.25</td></tr>
			<tr><td>1</td><td>MSFT</td><td>Microsoft</td><td>x</td><td>11,520.00</td></tr>
			<tr><td>2</td><td>GOOG</td><td>Alphabet</td><td>x</td><td>140.50</td></tr>
		</tbody>
	</table>
</div>`

const htmlTotalOnly = `<div class="total yf-c259ju">1-25 of 1067</div>`

const htmlEmpty = `<html><body></body></html>`

const htmlRowsPerPageButton = `
<div class="screener-table">
	<button aria-label="Rows per page 25">25</button>
</div>`

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"valid with comma", "11,520.00", 11520.0},
		{"valid no comma", "150.25", 150.25},
		{"empty string", "", 0.0},
		{"invalid returns zero", "not a number", 0.0},
		{"whitespace only", "   ", 0.0},
		{"multiple separators", "1,234,567.89", 1234567.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrice(tt.input)
			if got != tt.expected {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseRows(t *testing.T) {
	p := NewParser()

	records := p.ParseRows(htmlWithTable)
	if len(records) != 3 {
		t.Fatalf("ParseRows() returned %d records, want 3", len(records))
	}

	want := []struct {
		symbol string
		name   string
		price  float64
	}{
		{"AAPL", "Apple Inc", 150.25},
		{"MSFT", "Microsoft", 11520.0},
		{"GOOG", "Alphabet", 140.50},
	}
	for i, w := range want {
		if records[i].Symbol != w.symbol || records[i].Name != w.name || records[i].Price != w.price {
			t.Errorf("record %d = %+v, want {%s %s %v}", i, records[i], w.symbol, w.name, w.price)
		}
	}
}

func TestParseRows_MissingStructure(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		html string
	}{
		{"no screener div", htmlTotalOnly},
		{"empty html", htmlEmpty},
		{"div without table", `<div class="screener-table"></div>`},
		{"table without tbody", `<div class="screener-table"><table></table></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if records := p.ParseRows(tt.html); len(records) != 0 {
				t.Errorf("ParseRows() returned %d records, want 0", len(records))
			}
		})
	}
}

func TestParseRows_SkipsShortRows(t *testing.T) {
	p := NewParser()

	html := `
	<div class="screener-table">
		<table><tbody>
			<tr><td>0</td><td>AAPL</td><td>Apple Inc</td><td>x</td><td>150.25</td></tr>
			<tr><td>spacer</td><td>ad</td></tr>
			<tr><td>1</td><td>MSFT</td><td>Microsoft</td><td>x</td><td>300.00</td></tr>
		</tbody></table>
	</div>`

	records := p.ParseRows(html)
	if len(records) != 2 {
		t.Fatalf("ParseRows() returned %d records, want 2", len(records))
	}
	if records[0].Symbol != "AAPL" || records[1].Symbol != "MSFT" {
		t.Errorf("sibling rows affected by skipped row: %+v", records)
	}
}

func TestTotalRows(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{"extracts total from div", htmlTotalOnly, 1067},
		{"full page", htmlWithTable, 1067},
		{"no div", htmlEmpty, 0},
		{"no of in text", `<div class="total yf-c259ju">invalid</div>`, 0},
		{"non-numeric total", `<div class="total">1-25 of lots</div>`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.TotalRows(tt.html); got != tt.expected {
				t.Errorf("TotalRows() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestRowsPerPage(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name     string
		html     string
		expected int
	}{
		{"extracts from aria-label", htmlRowsPerPageButton, 25},
		{"no button", htmlEmpty, 0},
		{"non-numeric label", `<button aria-label="Rows per page all">all</button>`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.RowsPerPage(tt.html); got != tt.expected {
				t.Errorf("RowsPerPage() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestParseAnchors(t *testing.T) {
	p := NewParser()

	html := `
	<body>
		<a href="/quote/PETR4">Petrobras Brazil</a>
		<a href="#">Brazil fragment link</a>
		<a href="/quote/AAPL">Apple Inc</a>
		<a href="/markets">brazil markets</a>
		<a href="/empty"></a>
	</body>`

	records := p.ParseAnchors(html, "Brazil")
	if len(records) != 2 {
		t.Fatalf("ParseAnchors() returned %d records, want 2", len(records))
	}
	if records[0].Name != "Petrobras Brazil" {
		t.Errorf("records[0].Name = %q, want %q", records[0].Name, "Petrobras Brazil")
	}
	if records[1].Name != "brazil markets" {
		t.Errorf("records[1].Name = %q, want %q", records[1].Name, "brazil markets")
	}
	for i, r := range records {
		if r.Symbol != "" || r.Price != 0 {
			t.Errorf("record %d should only have a name, got %+v", i, r)
		}
	}
}
