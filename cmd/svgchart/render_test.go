package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgchart/linechart"
	"github.com/spf13/viper"
)

const sampleCSV = `date,value,category
2021-01-01,$10,a
2021-01-02,$20,a
2021-01-01,$5,b
2021-01-03,$8,b
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := loadOptions(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	def := linechart.DefaultOptions()
	if opts.DataMapping != def.DataMapping || opts.Legend != def.Legend ||
		opts.XAxis != def.XAxis || opts.YAxis != def.YAxis || opts.Sort != def.Sort {
		t.Errorf("expected the default options, got %+v", opts)
	}
}

func TestLoadOptionsConfigFile(t *testing.T) {
	path := writeFile(t, "opts.yaml", `
dataMapping:
  x: day
legend:
  position: topCenter
  title: true
  legendName: Shops
yAxis:
  gridlines: true
errorMode: warn
palette: [navy, teal]
`)
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	opts, err := loadOptions(v)
	if err != nil {
		t.Fatal(err)
	}
	if opts.DataMapping.X != "day" || opts.DataMapping.Y != "value" {
		t.Errorf("unexpected mapping %+v", opts.DataMapping)
	}
	if opts.Legend.Position != linechart.TopCenter || !opts.Legend.Title || opts.Legend.LegendName != "Shops" {
		t.Errorf("unexpected legend %+v", opts.Legend)
	}
	if !opts.Legend.Enabled || opts.Legend.TextSize != 12 || opts.Legend.Padding != 20 {
		t.Errorf("legend defaults should be kept, got %+v", opts.Legend)
	}
	if !opts.YAxis.Gridlines || opts.YAxis.TicksDensity != 20 {
		t.Errorf("unexpected y axis %+v", opts.YAxis)
	}
	if opts.ErrorMode != "warn" {
		t.Errorf("unexpected error mode %q", opts.ErrorMode)
	}
	if len(opts.Palette) != 2 || opts.Palette[1] != "teal" {
		t.Errorf("unexpected palette %v", opts.Palette)
	}

	t.Setenv("SVGCHART_LEGEND_POSITION", "bottomCenter")
	v.SetEnvPrefix("SVGCHART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	opts, err = loadOptions(v)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Legend.Position != linechart.BottomCenter {
		t.Errorf("environment should override the file, got %q", opts.Legend.Position)
	}
}

func TestLoadOptionsInvalid(t *testing.T) {
	v := viper.New()
	v.Set("legend.position", "left")
	if _, err := loadOptions(v); !errors.Is(err, linechart.ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions, got %v", err)
	}
}

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderCommand(t *testing.T) {
	input := writeFile(t, "data.csv", sampleCSV)
	dir := t.TempDir()

	for _, test := range []struct {
		name   string
		prefix string
	}{
		{"chart.svg", "<?xml"},
		{"chart.png", "\x89PNG"},
		{"chart.pdf", "%PDF-"},
	} {
		output := filepath.Join(dir, test.name)
		_, logs, err := runCommand(t, "render", "--input", input, "--output", output, "--width", "400", "--height", "300")
		if err != nil {
			t.Fatalf("%s: %s", test.name, err)
		}
		b, err := os.ReadFile(output)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(b, []byte(test.prefix)) {
			t.Errorf("%s: unexpected content %q", test.name, b[:8])
		}
		if test.name == "chart.svg" && !bytes.Contains(b, []byte(">20</text>")) {
			t.Errorf("%s: missing the top y tick label", test.name)
		}
		if !strings.Contains(logs, "chart written") {
			t.Errorf("%s: missing log line in %q", test.name, logs)
		}
	}
}

func TestRenderCommandPDFEngine(t *testing.T) {
	input := writeFile(t, "data.csv", sampleCSV)
	output := filepath.Join(t.TempDir(), "chart.pdf")
	if _, _, err := runCommand(t, "render", "--input", input, "--output", output, "--pdf-engine", "contentstream"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("unexpected content %q", b[:8])
	}

	if _, _, err := runCommand(t, "render", "--input", input, "--output", output, "--pdf-engine", "latex"); err == nil {
		t.Error("expected an error for an unknown PDF engine")
	}
}

func TestRenderCommandStdout(t *testing.T) {
	input := writeFile(t, "data.csv", "day,price,shop\n2021-01-01,$10,a\n2021-01-02,$20,b\n")
	out, _, err := runCommand(t, "render", "-i", input, "-x", "day", "-y", "price", "-z", "shop", "--legend=false", "--log-level", "error")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<svg") || strings.Contains(out, `class="legend"`) {
		t.Errorf("unexpected output %q", out)
	}
	if got := strings.Count(out, `class="series"`); got != 2 {
		t.Errorf("expected 2 series, got %d", got)
	}
	// the y domain is [0, 20]
	if !strings.Contains(out, ">20</text>") {
		t.Errorf("missing the top y tick label in %q", out)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeFile(t, "data.csv", sampleCSV)
	output := filepath.Join(t.TempDir(), "chart.gif")
	if _, _, err := runCommand(t, "render", "--input", input, "--output", output); err == nil {
		t.Error("expected an error for an unsupported format")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("no file should be created for an unsupported format")
	}

	if _, _, err := runCommand(t, "render", "--input", input, "-x", "when"); err == nil {
		t.Error("expected an error for a missing field")
	}
	if _, _, err := runCommand(t, "render"); err == nil {
		t.Error("expected an error for a missing input")
	}
	if _, _, err := runCommand(t, "render", "--input", input, "--log-level", "loud"); err == nil {
		t.Error("expected an error for an invalid log level")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "svgchart dev") {
		t.Errorf("unexpected version output %q", out)
	}
}
