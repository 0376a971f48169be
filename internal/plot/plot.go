// Package plot renders sampled points as scatter plots.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"nethermath/pkg/vecmath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Margin is the border in pixels between a panel edge and the plotted area.
const Margin = 16

var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	AxisColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	PointColor = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	LabelColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Panel is one square view. Points are expected in [-1, 1] on both axes;
// anything outside is dropped.
type Panel struct {
	Title  string
	Points []vecmath.Vec2
}

// TopView projects 3D points onto the x/z plane.
func TopView(title string, pts []vecmath.Vec3) Panel {
	p := Panel{Title: title, Points: make([]vecmath.Vec2, len(pts))}
	for i, v := range pts {
		xz := v.ToVectorXZ()
		p.Points[i] = vecmath.Vec2{X: xz.X, Y: xz.Z}
	}
	return p
}

// SideView projects 3D points onto the x/y plane.
func SideView(title string, pts []vecmath.Vec3) Panel {
	p := Panel{Title: title, Points: make([]vecmath.Vec2, len(pts))}
	for i, v := range pts {
		p.Points[i] = vecmath.Vec2{X: v.X, Y: v.Y}
	}
	return p
}

// Scatter draws the panels left to right, each size pixels square.
func Scatter(size int, panels ...Panel) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size*len(panels), size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for i, p := range panels {
		origin := image.Pt(i*size, 0)
		drawAxes(img, origin, size)
		for _, pt := range p.Points {
			if x, y, ok := toPixel(pt, size); ok {
				img.SetRGBA(origin.X+x, origin.Y+y, PointColor)
			}
		}
		label(img, origin.Add(image.Pt(4, 13)), p.Title)
	}
	return img
}

// toPixel maps [-1, 1]² onto the plot area; +y points up in the image.
func toPixel(p vecmath.Vec2, size int) (int, int, bool) {
	if !p.IsFinite() || math.Abs(p.X) > 1 || math.Abs(p.Y) > 1 {
		return 0, 0, false
	}
	span := float64(size - 2*Margin - 1)
	x := Margin + int(math.Round((p.X+1)/2*span))
	y := Margin + int(math.Round((1-p.Y)/2*span))
	return x, y, true
}

func drawAxes(img *image.RGBA, origin image.Point, size int) {
	mid := size / 2
	for i := Margin; i < size-Margin; i++ {
		img.SetRGBA(origin.X+i, origin.Y+mid, AxisColor)
		img.SetRGBA(origin.X+mid, origin.Y+i, AxisColor)
	}
}

func label(img *image.RGBA, at image.Point, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
