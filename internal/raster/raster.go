// Package raster renders the scene in software, without a GL context, and
// writes the result as a PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"quatview/internal/mesh"
	"quatview/internal/quat"
	"quatview/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot colours: a white background, black coordinate axes and the
// rotation axis and object in red.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
	Red   = color.RGBA{R: 255, A: 255}
)

// Project maps a point through mvp to pixel coordinates of a width x height
// image. Depth is ignored; the result may lie outside the image. ok is
// false when the point has no finite projection.
func Project(mvp mgl32.Mat4, p quat.Vector3, width, height int) (x, y int, ok bool) {
	fx, fy, ok := project(mvp, p, width, height)
	if !ok {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

func project(mvp mgl32.Mat4, p quat.Vector3, width, height int) (x, y float64, ok bool) {
	clip := mvp.Mul4x1(mgl32.Vec4{float32(p.X), float32(p.Y), float32(p.Z), 1})
	if clip[3] == 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	x = float64((ndc[0] + 1) / 2 * float32(width))
	y = float64((1 - ndc[1]) / 2 * float32(height))
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

// DrawLines projects every segment of l, clips it to the image and draws
// what is left.
func DrawLines(img *image.RGBA, mvp mgl32.Mat4, l mesh.Lines, col color.RGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	bounds := [4]float64{0, 0, float64(w - 1), float64(h - 1)}
	for i := 0; i+1 < len(l); i += 2 {
		x1, y1, ok1 := project(mvp, l[i], w, h)
		x2, y2, ok2 := project(mvp, l[i+1], w, h)
		if !ok1 || !ok2 {
			continue
		}
		x1, y1, x2, y2, ok := clipSegment(x1, y1, x2, y2, bounds)
		if !ok {
			continue
		}
		DrawLine(img, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), col)
	}
}

// clipSegment cuts a segment down to the rectangle {minX, minY, maxX, maxY}
// with the Liang-Barsky method. ok is false when nothing is inside.
func clipSegment(x1, y1, x2, y2 float64, rect [4]float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x1 - rect[0]},
		{dx, rect[2] - x1},
		{-dy, y1 - rect[1]},
		{dy, rect[3] - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			// Parallel to this edge.
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// Snapshot renders one frame of s with the given object mesh.
func Snapshot(s *scene.State, object mesh.Lines, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Rect, &image.Uniform{C: White}, image.Point{}, draw.Src)

	viewProj := scene.Projection(width, height).Mul4(s.View())

	DrawLines(img, viewProj, mesh.Axes(mesh.AxisExtent), Black)
	DrawLines(img, viewProj, mesh.AxisLine(s.Axis, mesh.AxisExtent), Red)
	DrawLines(img, viewProj.Mul4(s.Model()), object, Red)

	return img
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
