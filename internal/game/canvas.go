package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/backdrop/internal/scene"
)

var whiteSubImage *ebiten.Image

// solid returns a 1x1 white source for DrawTriangles fills.
func solid() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// canvas draws scene primitives onto an ebiten image.
type canvas struct {
	dst *ebiten.Image

	// Reused across FillPolygon calls to avoid per-frame allocation.
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *canvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (c *canvas) StrokePath(pts []scene.Point, width float64, clr color.NRGBA, closed bool) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
	if closed && len(pts) > 2 {
		a, b := pts[len(pts)-1], pts[0]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

// FillPolygon fans triangles out from the centroid, which is exact for the
// star-shaped outlines the scene produces.
func (c *canvas) FillPolygon(pts []scene.Point, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	c.vertices = append(c.vertices[:0], vertex(cx, cy))
	for _, p := range pts {
		c.vertices = append(c.vertices, vertex(p.X, p.Y))
	}
	c.indices = c.indices[:0]
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		c.indices = append(c.indices, 0, i+1, (i+1)%n+1)
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vertices, c.indices, solid(), op)
}
