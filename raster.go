package poly

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize renders the coverage of p into an alpha mask covering r.
// Polygon coordinates are in the same space as r.
//
// Solid geometry is drawn triangle by triangle, each turned to the same
// winding so that overlapping triangles merge instead of cancelling.
// Implicit geometry is filled as a single ring. Other kinds draw nothing.
func Rasterize(p Polygon, r image.Rectangle) *image.Alpha {
	dst := image.NewAlpha(r)
	if r.Empty() {
		return dst
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	moveTo := func(v Point) { z.MoveTo(float32(v.X-ox), float32(v.Y-oy)) }
	lineTo := func(v Point) { z.LineTo(float32(v.X-ox), float32(v.Y-oy)) }

	drawn := 0
	switch p.Kind {
	case Solid:
		for i := 0; i+2 < len(p.Indices); i += 3 {
			ia, ib, ic := p.Indices[i], p.Indices[i+1], p.Indices[i+2]
			if int(max(ia, ib, ic)) >= len(p.Vertices) {
				continue
			}
			a, b, c := p.Vertices[ia], p.Vertices[ib], p.Vertices[ic]
			if b.Sub(a).Cross(c.Sub(a)) < 0 {
				b, c = c, b
			}
			moveTo(a)
			lineTo(b)
			lineTo(c)
			z.ClosePath()
			drawn++
		}
	case Implicit:
		if len(p.Vertices) >= 3 {
			moveTo(p.Vertices[0])
			for _, v := range p.Vertices[1:] {
				lineTo(v)
			}
			z.ClosePath()
			drawn++
		}
	}

	if drawn > 0 {
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	}
	return dst
}

// Coverage returns the fraction of pixels in m with non-zero alpha.
func Coverage(m *image.Alpha) float64 {
	b := m.Bounds()
	if b.Empty() {
		return 0
	}
	set := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[(y-b.Min.Y)*m.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] != 0 {
				set++
			}
		}
	}
	return float64(set) / float64(b.Dx()*b.Dy())
}
