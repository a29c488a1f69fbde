package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image encoding supported by Render.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png" (case-insensitive). Empty means SVG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", s)
	}
}

// ContentType is the MIME type of the encoded image.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) renderer() gochart.RendererProvider {
	if f == FormatPNG {
		return gochart.PNG
	}
	return gochart.SVG
}

// Render draws cfg to w.
func Render(cfg Config, f Format, w io.Writer) error {
	if len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return errors.New("chart has no data")
	}
	switch cfg.ChartType {
	case "bar":
		return renderBar(cfg, f, w)
	case "line":
		return renderLine(cfg, f, w)
	default:
		return fmt.Errorf("unsupported chart type %q", cfg.ChartType)
	}
}

func renderBar(cfg Config, f Format, w io.Writer) error {
	points := cfg.Series[0].Data
	bars := make([]gochart.Value, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		color := p.Color
		if color == "" {
			color = cfg.Series[0].Color
		}
		bars = append(bars, gochart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: fill(color),
		})
		values = append(values, p.Value)
	}

	lo, hi := axisRange(values)
	bc := gochart.BarChart{
		Title:      cfg.Title,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		Height:     512,
		BarWidth:   80,
		YAxis: gochart.YAxis{
			Name:  cfg.YAxis,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		UseBaseValue: lo < 0,
		BaseValue:    0,
		Bars:         bars,
	}
	if err := bc.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("render %s chart: %w", cfg.Kind, err)
	}
	return nil
}

func renderLine(cfg Config, f Format, w io.Writer) error {
	s := cfg.Series[0]
	xs := make([]float64, 0, len(s.Data))
	ys := make([]float64, 0, len(s.Data))
	for i, p := range s.Data {
		x, err := strconv.ParseFloat(p.Label, 64)
		if err != nil {
			x = float64(i + 1)
		}
		xs = append(xs, x)
		ys = append(ys, p.Value)
	}

	lo, hi := axisRange(ys)
	color := colorOf(s.Color)
	c := gochart.Chart{
		Title:      cfg.Title,
		Background: gochart.Style{Padding: gochart.Box{Top: 40}},
		XAxis:      gochart.XAxis{Name: cfg.XAxis},
		YAxis: gochart.YAxis{
			Name:  cfg.YAxis,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: color,
					StrokeWidth: 2,
					DotColor:    color,
					DotWidth:    4,
				},
			},
		},
	}
	if err := c.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("render %s chart: %w", cfg.Kind, err)
	}
	return nil
}

// axisRange spans the values and zero. An all-zero chart gets [-1, 1] so the
// axis never collapses to a zero-height range.
func axisRange(values []float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return -1, 1
	}
	return lo, hi
}

func fill(hex string) gochart.Style {
	c := colorOf(hex)
	return gochart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1}
}

func colorOf(hex string) drawing.Color {
	if hex == "" {
		return gochart.ColorBlue
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
