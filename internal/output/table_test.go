package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
		{
			name:  "no ansi",
			input: "plain text",
			want:  10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	got := padLeft("42", 6)
	if got != "    42" {
		t.Errorf("padLeft(%q, 6) = %q", "42", got)
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Subject", "Minutes")
	tbl.AddRow("Math", "95")
	tbl.AddRow("Physics", "87")

	output := tbl.Render()

	// Should contain headers.
	if !strings.Contains(output, "Subject") {
		t.Error("expected header 'Subject' in output")
	}
	if !strings.Contains(output, "Minutes") {
		t.Error("expected header 'Minutes' in output")
	}

	// Should contain data.
	if !strings.Contains(output, "Math") {
		t.Error("expected 'Math' in output")
	}
	if !strings.Contains(output, "Physics") {
		t.Error("expected 'Physics' in output")
	}

	// Should have separator line.
	if !strings.Contains(output, "─") {
		t.Error("expected separator character in output")
	}

	// Count lines: header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_AlignRight(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Subject", "Minutes")
	tbl.AlignRight(1)
	tbl.AddRow("Math", "5")
	tbl.AddRow("Physics", "120")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}

	// The short numeric value should be pushed to the column's right edge.
	if !strings.HasSuffix(lines[2], "  5") {
		t.Errorf("expected right-aligned value, got %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "120") {
		t.Errorf("expected right-aligned value, got %q", lines[3])
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	output := tbl.Render()
	if output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}

	// The data row should be padded so columns align.
	dataLine := lines[2]
	if !strings.Contains(dataLine, "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	// String() should equal Render().
	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestGoalBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name    string
		minutes int
		goal    int
		filled  int
	}{
		{"empty", 0, 120, 0},
		{"half", 60, 120, 10},
		{"full", 120, 120, 20},
		{"over goal caps", 300, 120, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GoalBar(tc.minutes, tc.goal, 20)
			filled := strings.Count(got, "█")
			if filled != tc.filled {
				t.Errorf("GoalBar(%d, %d) filled = %d, want %d", tc.minutes, tc.goal, filled, tc.filled)
			}
			if !strings.Contains(got, "m") {
				t.Errorf("expected minutes suffix in %q", got)
			}
		})
	}
}

func TestTrendArrowPercent(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := TrendArrowPercent(0, true); got != "─" {
		t.Errorf("TrendArrowPercent(0) = %q, want dash", got)
	}
	if got := TrendArrowPercent(12.4, true); !strings.Contains(got, "▲ +12%") {
		t.Errorf("unexpected up arrow rendering: %q", got)
	}
	if got := TrendArrowPercent(-8.6, true); !strings.Contains(got, "▼ -9%") {
		t.Errorf("unexpected down arrow rendering: %q", got)
	}
}

func TestHeatCell_NoColor(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	// Levels map to increasingly dense characters, clamped at both ends.
	if got := HeatCell(0); got != "·" {
		t.Errorf("HeatCell(0) = %q", got)
	}
	if got := HeatCell(HeatLevels() - 1); got != "█" {
		t.Errorf("HeatCell(max) = %q", got)
	}
	if got := HeatCell(99); got != "█" {
		t.Errorf("HeatCell(99) = %q, want clamped to max", got)
	}
	if got := HeatCell(-1); got != "·" {
		t.Errorf("HeatCell(-1) = %q, want clamped to 0", got)
	}
}

func TestSetNoColor(t *testing.T) {
	// After SetNoColor(true), StyleHeader should render without ANSI.
	SetNoColor(true)
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}

	// After SetNoColor(false), we restore — but note: the original styles
	// are lost since SetNoColor only sets to plain. We just verify no crash
	// and that the function is idempotent.
	SetNoColor(false)
}
