package raster

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"quatview/internal/mesh"
	"quatview/internal/quat"
	"quatview/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDrawLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLine(img, 1, 1, 8, 5, Red)
	for _, p := range []image.Point{{1, 1}, {8, 5}} {
		if img.RGBAAt(p.X, p.Y) != Red {
			t.Fatalf("endpoint %v not drawn", p)
		}
	}

	DrawLine(img, 3, 7, 3, 7, Black)
	if img.RGBAAt(3, 7) != Black {
		t.Fatal("single point line not drawn")
	}

	// Off-image segments must not panic.
	DrawLine(img, -50, -50, 60, 40, Black)
	DrawLine(img, 100, 100, 200, 200, Black)
}

func TestProject(t *testing.T) {
	x, y, ok := Project(mgl32.Ident4(), quat.Vec3(0, 0, 0), 200, 100)
	if !ok || x != 100 || y != 50 {
		t.Fatalf("origin projected to (%d, %d, %v)", x, y, ok)
	}
	x, y, _ = Project(mgl32.Ident4(), quat.Vec3(-1, 1, 0), 200, 100)
	if x != 0 || y != 0 {
		t.Fatalf("top-left projected to (%d, %d)", x, y)
	}
	if _, _, ok := Project(mgl32.Mat4{}, quat.Vec3(1, 2, 3), 10, 10); ok {
		t.Fatal("expected a zero w to be rejected")
	}
}

func TestSnapshot(t *testing.T) {
	s := scene.New()
	s.Angle = 0.8
	img := Snapshot(s, mesh.Cube(3), 320, 240)

	var black, red int
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			switch img.RGBAAt(x, y) {
			case Black:
				black++
			case Red:
				red++
			}
		}
	}
	if black == 0 || red == 0 {
		t.Fatalf("snapshot has %d black and %d red pixels", black, red)
	}

	viewProj := scene.Projection(320, 240).Mul4(s.View())
	x, y, _ := Project(viewProj, quat.Vec3(0, 0, 0), 320, 240)
	drawn := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if img.RGBAAt(x+dx, y+dy) != White {
				drawn = true
			}
		}
	}
	if !drawn {
		t.Fatalf("no axis drawn near the world origin at (%d, %d)", x, y)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, Snapshot(scene.New(), mesh.Cube(3), 64, 48)); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("decoded size %v", b)
	}

	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), img); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestClipSegment(t *testing.T) {
	rect := [4]float64{0, 0, 99, 49}
	cases := []struct {
		name           string
		x1, y1, x2, y2 float64
		ok             bool
	}{
		{"inside", 10, 10, 20, 30, true},
		{"crossing", -1e9, 25, 1e9, 25, true},
		{"diagonal", -500, -500, 500, 500, true},
		{"left of", -10, 0, -5, 40, false},
		{"below", 0, 60, 90, 70, false},
		{"missing corner", -10, 60, 200, 200, false},
	}
	for _, c := range cases {
		x1, y1, x2, y2, ok := clipSegment(c.x1, c.y1, c.x2, c.y2, rect)
		if ok != c.ok {
			t.Fatalf("%s: ok = %v", c.name, ok)
		}
		if !ok {
			continue
		}
		for _, v := range [][2]float64{{x1, y1}, {x2, y2}} {
			if v[0] < rect[0]-1e-9 || v[0] > rect[2]+1e-9 || v[1] < rect[1]-1e-9 || v[1] > rect[3]+1e-9 {
				t.Fatalf("%s: clipped point %v outside %v", c.name, v, rect)
			}
		}
	}

	x1, y1, x2, y2, _ := clipSegment(10, 10, 20, 30, rect)
	if x1 != 10 || y1 != 10 || x2 != 20 || y2 != 30 {
		t.Fatalf("inside segment changed to (%v, %v)-(%v, %v)", x1, y1, x2, y2)
	}
}

func TestDrawLinesClipsLongSegments(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	// Drawn unclipped this would walk about a billion pixels.
	DrawLines(img, mgl32.Ident4(), mesh.Lines{quat.Vec3(-2e7, 0, 0), quat.Vec3(2e7, 0, 0)}, Black)

	y := 25
	for x := 0; x < 100; x++ {
		if img.RGBAAt(x, y) != Black {
			t.Fatalf("pixel (%d, %d) not drawn", x, y)
		}
	}
}

func TestSnapshotLongAxis(t *testing.T) {
	s := scene.New()
	s.Axis = quat.Vec3(1e5, 1e5, 0)
	img := Snapshot(s, mesh.Cube(3), 160, 120)
	if img.Rect.Dx() != 160 {
		t.Fatalf("snapshot bounds %v", img.Rect)
	}
}
