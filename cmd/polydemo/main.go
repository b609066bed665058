// Command polydemo strokes a sample path with both extruders and writes a
// PNG preview.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/poly"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "polydemo.png", "output file")
		stroke  = flag.Float64("stroke", 12, "stroke width")
		joint   = flag.String("joint", "round", "joint style: none, bevel, mitre, round")
		capName = flag.String("cap", "round", "cap style: none, square, round")
		epsilon = flag.Float64("simplify", poly.DefaultTolerance, "simplification tolerance")
		closed  = flag.Bool("closed", false, "close the sample path")
		verbose = flag.Bool("v", false, "log debug output")
		lang    = flag.String("lang", "en", "language for printed numbers")
	)
	flag.Parse()

	if *verbose {
		poly.SetLogger(slogDebug())
	}

	j, err := poly.ParseJointStyle(*joint)
	if err != nil {
		log.Fatal(err)
	}
	c, err := poly.ParseCapStyle(*capName)
	if err != nil {
		log.Fatal(err)
	}

	path := samplePath(float64(*width)/2, float64(*height))
	simplified := poly.Simplify(path, *epsilon)

	opts := []poly.ExtrudeOption{poly.WithJoint(j), poly.WithCap(c)}
	fast := poly.NewExtruder(opts...)
	fast.Set(simplified, *closed)
	if err := fast.Calculate(*stroke); err != nil {
		log.Fatalf("Fast extrusion failed: %v", err)
	}

	robust := poly.NewRobustExtruder(opts...)
	robust.Set(shift(simplified, float64(*width)/2), *closed)
	if err := robust.Calculate(*stroke); err != nil {
		log.Fatalf("Robust extrusion failed: %v", err)
	}

	bounds := image.Rect(0, 0, *width, *height)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(color.RGBA{24, 28, 40, 255}), image.Point{}, draw.Src)
	paint(img, poly.Rasterize(fast.Polygon(), bounds), color.RGBA{240, 140, 40, 255})
	paint(img, poly.Rasterize(robust.Polygon(), bounds), color.RGBA{80, 180, 240, 255})

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.Make(*lang))
	p.Printf("Path: %d points, %d after simplification\n", len(path), len(simplified))
	report(p, "Fast", fast.Polygon())
	report(p, "Robust", robust.Polygon())
	log.Printf("Preview saved to %s (%dx%d)\n", *output, *width, *height)
}

// samplePath returns a damped wave across a w by h box.
func samplePath(w, h float64) []poly.Point {
	const n = 160
	pts := make([]poly.Point, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / (n - 1)
		x := 40 + t*(w-80)
		y := h/2 + (h/3)*math.Exp(-2*t)*math.Sin(t*4*math.Pi)
		pts = append(pts, poly.Pt(x, y))
	}
	return pts
}

func shift(pts []poly.Point, dx float64) []poly.Point {
	out := make([]poly.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(poly.Pt(dx, 0))
	}
	return out
}

func paint(dst draw.Image, mask *image.Alpha, c color.RGBA) {
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

func report(p *message.Printer, name string, pg poly.Polygon) {
	area, err := pg.Area()
	if err != nil {
		log.Printf("%s: area unavailable: %v", name, err)
	}
	p.Printf("%s: %d vertices, %d triangles, %d index bytes, area %.1f\n",
		name, len(pg.Vertices), len(pg.Indices)/3, pg.IndexBytes(), area)
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
