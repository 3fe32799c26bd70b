package main

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgchart/chartdata"
	"github.com/benoitkugler/svgchart/linechart"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpdf"
	"github.com/benoitkugler/svgchart/svgpdf/alt"
	"github.com/benoitkugler/svgchart/svgraster"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// renderParams are the settings of the render command
// which are not chart options.
type renderParams struct {
	Input   string
	Sheet   string
	Charset string
	Output  string // "" or "-" for SVG on stdout
	Width   float64
	Height  float64

	// PDFEngine is "gofpdf" (the default) or "contentstream",
	// which writes paths only.
	PDFEngine string
}

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart from a CSV or XLSX file",
		Long: `Render a chart from a CSV or XLSX file, whose first line holds the field names.
The output format (SVG, PNG or PDF) is chosen from the output file extension.`,
		Example: `  svgchart render --input prices.csv --output prices.svg
  svgchart render --input sales.xlsx --sheet 2021 -x month -y total -z shop --output sales.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("logLevel"))
			if err != nil {
				return err
			}
			opts, err := loadOptions(v)
			if err != nil {
				logger.Error("invalid options", "error", err)
				return err
			}
			opts.Logger = logger
			params := renderParams{
				Input:   v.GetString("input"),
				Sheet:   v.GetString("sheet"),
				Charset: v.GetString("charset"),
				Output:  v.GetString("output"),
				Width:   v.GetFloat64("width"),
				Height:  v.GetFloat64("height"),

				PDFEngine: v.GetString("pdfEngine"),
			}
			if err := runRender(params, opts, cmd.OutOrStdout(), logger); err != nil {
				logger.Error("rendering failed", "error", err)
				return err
			}
			return nil
		},
	}

	def := linechart.DefaultOptions()
	flags := cmd.Flags()
	flags.StringP("input", "i", "", "Input file, CSV or XLSX (required)")
	flags.String("sheet", "", "Sheet of an XLSX input (default is the first one)")
	flags.String("charset", "", "Encoding of a CSV input, like latin1 (default is UTF-8)")
	flags.StringP("output", "o", "", "Output file, .svg, .png or .pdf (default is SVG on stdout)")
	flags.Float64("width", 960, "Width of the chart, in pixels")
	flags.Float64("height", 500, "Height of the chart, in pixels")
	flags.String("pdf-engine", "gofpdf", "PDF writer: gofpdf, or contentstream (experimental, without texts)")
	flags.StringP("x-field", "x", def.DataMapping.X, "Field holding the timestamps")
	flags.StringP("y-field", "y", def.DataMapping.Y, "Field holding the values")
	flags.StringP("z-field", "z", def.DataMapping.Z, "Field holding the categories")
	flags.Bool("legend", def.Legend.Enabled, "Draw the legend")
	flags.String("legend-position", string(def.Legend.Position), "Legend position: bottomCenter or topCenter")
	cmd.MarkFlagRequired("input")

	for key, flag := range map[string]string{
		"input":           "input",
		"sheet":           "sheet",
		"charset":         "charset",
		"output":          "output",
		"width":           "width",
		"height":          "height",
		"pdfEngine":       "pdf-engine",
		"dataMapping.x":   "x-field",
		"dataMapping.y":   "y-field",
		"dataMapping.z":   "z-field",
		"legend.enabled":  "legend",
		"legend.position": "legend-position",
	} {
		v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{Level: lvl, Prefix: "svgchart"}), nil
}

// loadOptions merges the settings known to `v` (config file,
// environment and flags) over the default options.
func loadOptions(v *viper.Viper) (linechart.Options, error) {
	opts := linechart.DefaultOptions()
	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("decoding options: %w", err)
	}
	return opts, opts.Validate()
}

func readTable(params renderParams) (*chartdata.Table, error) {
	f, err := os.Open(params.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(params.Input)) {
	case ".xlsx", ".xlsm":
		return chartdata.ReadXLSX(f, params.Sheet)
	default:
		return chartdata.ReadCSVCharset(f, params.Charset)
	}
}

func runRender(params renderParams, opts linechart.Options, stdout io.Writer, logger *log.Logger) error {
	table, err := readTable(params)
	if err != nil {
		return err
	}
	logger.Info("input read", "file", params.Input, "rows", table.Len())

	host := svgdoc.NewElement(params.Width, params.Height)
	chart, err := linechart.New(host, opts)
	if err != nil {
		return err
	}
	if err := chart.DrawTable(table); err != nil {
		return err
	}
	doc := chart.Document()

	if params.Output == "" || params.Output == "-" {
		return doc.Encode(stdout)
	}
	format, err := outputFormat(params.Output)
	if err != nil {
		return err
	}
	if format == "pdf" {
		switch params.PDFEngine {
		case "", "gofpdf":
		case "contentstream":
			if err := alt.WriteFile(doc, params.Output); err != nil {
				return err
			}
			logger.Info("chart written", "file", params.Output, "width", doc.Width, "height", doc.Height)
			return nil
		default:
			return fmt.Errorf("unknown PDF engine %q", params.PDFEngine)
		}
	}
	out, err := os.Create(params.Output)
	if err != nil {
		return err
	}
	if err := writeDocument(doc, format, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("chart written", "file", params.Output, "width", doc.Width, "height", doc.Height)
	return nil
}

// outputFormat returns the format matching the extension of `name`
func outputFormat(name string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".svg", ".png", ".pdf":
		return ext[1:], nil
	default:
		return "", fmt.Errorf("unsupported output format %q", ext)
	}
}

func writeDocument(doc *svgdoc.Document, format string, w io.Writer) error {
	switch format {
	case "png":
		return png.Encode(w, svgraster.RasterDocumentOn(doc, color.White))
	case "pdf":
		return svgpdf.RenderDocument(doc, w)
	default:
		return doc.Encode(w)
	}
}
