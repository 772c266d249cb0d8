package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/ustr"
)

func TestFprintTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	err := Fprint(&out, ustr.FromString("héllo"), &Config{LineWidth: 40, Context: uax11.LatinContext, Plain: true})
	if err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	t.Logf("\n%s", out.String())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines of output, got %d", len(lines))
	}
	if lines[0] != "5 codepoints, 6 bytes" || lines[1] != "héllo" {
		t.Fatalf("unexpected header %q / %q", lines[0], lines[1])
	}
	row := strings.Fields(lines[4])
	want := []string{"1", "1", "c3", "a9", "U+00E9", "1", "é"}
	if strings.Join(row, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected row for é: %q", lines[4])
	}
	if lines[8] != "display width: 5 en" {
		t.Fatalf("unexpected footer %q", lines[8])
	}
}

func TestFprintNull(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := Fprint(&out, ustr.Null(), nil); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if out.String() != "<null>\n" {
		t.Fatalf("unexpected output for null string: %q", out.String())
	}
}

func TestPreviewCutsLongText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	s := ustr.FromString(strings.Repeat("abc", 10))
	p := preview(s, 10, uax11.LatinContext)
	if p != "abcabcabc…" {
		t.Fatalf("unexpected preview %q", p)
	}
	if p = preview(ustr.FromString("a\tb"), 10, uax11.LatinContext); p != "a·b" {
		t.Fatalf("control characters should be shown as dots, got %q", p)
	}
}

func TestConfigFromTerminal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	config := ConfigFromTerminal()
	if config.LineWidth < 10 || config.Context == nil {
		t.Fatalf("unexpected config %+v", config)
	}
}
