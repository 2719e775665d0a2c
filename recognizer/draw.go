package recognizer

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/nzfeng/fuzzyseg/dbg"
)

// This is for debugging purposes only

// Padding around the points so the strip lines are visibly longer than the
// segment itself
const dbgDrawPadding = 40

// DbgName colors the recognizer's readable name by its state: cyan before
// init, green while every invariant holds, red when IsValid fails.
func (r *Recognizer) DbgName() string {
	name := dbg.Name(r)
	switch {
	case !r.active:
		return aurora.Cyan(name).String()
	case r.IsValid():
		return aurora.Green(name).String()
	default:
		return aurora.Red(name).String()
	}
}

// DrawPNG renders the accepted points, the hull and the bounding strip.
func (r *Recognizer) DrawPNG(path string, scale float64) error {
	r.requireActive()
	return r.draw(scale).SavePNG(path)
}

// DbgDraw renders the recognizer state and prints it in the terminal (iTerm
// only).
func (r *Recognizer) DbgDraw(scale float64) {
	r.requireActive()
	c := r.draw(scale)
	c.SavePNG("/tmp/fuzzyseg.png")
	imgcat.CatFile("/tmp/fuzzyseg.png", os.Stdout)
}

func (r *Recognizer) draw(scale float64) *gg.Context {
	pts := r.set.Points()
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Strip first, so points and hull draw on top of it
	r.drawStrip(c, maxX-minX+maxY-minY+4, scale)

	// Hull outline
	vs := r.hull.Vertices()
	if len(vs) >= 2 {
		first := r.set.At(vs[0])
		c.MoveTo(float64(first.X), float64(first.Y))
		for _, v := range vs[1:] {
			p := r.set.At(v)
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	// Accepted points
	c.SetRGB(1, 1, 1)
	for _, p := range pts {
		c.DrawCircle(float64(p.X), float64(p.Y), 3/scale)
		c.Fill()
	}

	return c
}

// drawStrip draws the two supporting lines N·X = Mu and N·X = Mu+Eps,
// extended well past the point set. All of this is float math; only the
// picture is approximate.
func (r *Recognizer) drawStrip(c *gg.Context, reach, scale float64) {
	ar := r.arith
	nx := ar.Float(r.fit.nx)
	ny := ar.Float(r.fit.ny)
	normSq := nx*nx + ny*ny
	if normSq == 0 {
		return
	}
	mu := ar.Float(r.fit.mu)
	eps := ar.Float(r.fit.eps)

	// Unit direction along the lines and a base point on each line
	norm := math.Sqrt(normSq)
	dx, dy := -ny/norm, nx/norm
	c.SetRGBA(0.3, 0.2, 1, 0.9)
	c.SetLineWidth(1.5 / scale)
	for _, offset := range []float64{mu, mu + eps} {
		bx := nx * offset / normSq
		by := ny * offset / normSq
		c.MoveTo(bx-dx*reach, by-dy*reach)
		c.LineTo(bx+dx*reach, by+dy*reach)
		c.Stroke()
	}
}
