// Command gradients renders a sheet of sample gradients to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/colorgrad"
)

type sample struct {
	name   string
	colors []string
	mode   colorgrad.BlendMode
	interp colorgrad.Interpolation
	sharp  uint
}

var samples = []sample{
	{name: "rgb", colors: []string{"deeppink", "gold", "seagreen"}},
	{name: "linear-rgb", colors: []string{"deeppink", "gold", "seagreen"}, mode: colorgrad.BlendLinearRGB},
	{name: "oklab", colors: []string{"deeppink", "gold", "seagreen"}, mode: colorgrad.BlendOklab},
	{name: "hsv", colors: []string{"#ff0000", "#0000ff"}, mode: colorgrad.BlendHSV},
	{name: "catmull-rom", colors: []string{"#c6dbef", "#6baed6", "#2171b5", "#08306b"}, interp: colorgrad.InterpolationCatmullRom},
	{name: "basis", colors: []string{"#c6dbef", "#6baed6", "#2171b5", "#08306b"}, interp: colorgrad.InterpolationBasis},
	{name: "sharp", colors: []string{"rgb(255,0,0)", "hsl(120,100%,50%)", "hwb(240 0% 0%)"}, sharp: 7},
}

func main() {
	var (
		width   = flag.Int("width", 600, "strip width")
		height  = flag.Int("height", 40, "strip height")
		output  = flag.String("output", "gradients.png", "output file")
		verbose = flag.Bool("v", false, "log gradient construction")
	)
	flag.Parse()

	if *width < 1 || *height < 1 {
		log.Fatalf("invalid size %dx%d", *width, *height)
	}
	if *verbose {
		colorgrad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, *width, *height*len(samples)))
	for i, s := range samples {
		g, err := colorgrad.NewBuilder().
			HTMLColors(s.colors...).
			Mode(s.mode).
			Interpolation(s.interp).
			Build()
		if err != nil {
			log.Fatalf("%s: %v", s.name, err)
		}
		if s.sharp > 0 {
			g = g.Sharp(s.sharp, 0.2)
		}

		dst := image.Rect(0, i**height, *width, (i+1)**height)
		draw.NearestNeighbor.Scale(sheet, dst, strip(g, *width), image.Rect(0, 0, *width, 1), draw.Src, nil)
	}

	if err := savePNG(*output, sheet); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Gradients saved to %s (%dx%d)\n", *output, *width, *height*len(samples))
}

// strip samples g once per pixel into a single-row image.
func strip(g *colorgrad.Gradient, width int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, 1))
	for x, c := range g.Colors(width) {
		b := c.ToRGBA8()
		copy(img.Pix[x*4:x*4+4], b[:])
	}
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
