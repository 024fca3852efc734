package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"quatview/internal/config"
	"quatview/internal/mesh"
	"quatview/internal/quat"
	"quatview/internal/raster"
	"quatview/internal/render"
	"quatview/internal/report"
	"quatview/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const title = "Quaternion rotation"

var keys = map[glfw.Key]scene.Key{
	glfw.KeyW:        scene.KeyW,
	glfw.KeyS:        scene.KeyS,
	glfw.KeyA:        scene.KeyA,
	glfw.KeyD:        scene.KeyD,
	glfw.KeyQ:        scene.KeyQ,
	glfw.KeyE:        scene.KeyE,
	glfw.KeyI:        scene.KeyI,
	glfw.KeyK:        scene.KeyK,
	glfw.KeyJ:        scene.KeyJ,
	glfw.KeyL:        scene.KeyL,
	glfw.KeyU:        scene.KeyU,
	glfw.KeyO:        scene.KeyO,
	glfw.KeyUp:       scene.KeyUp,
	glfw.KeyDown:     scene.KeyDown,
	glfw.KeyLeft:     scene.KeyLeft,
	glfw.KeyRight:    scene.KeyRight,
	glfw.KeyPageUp:   scene.KeyPageUp,
	glfw.KeyPageDown: scene.KeyPageDown,
}

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}

	if cfg.Report {
		if err := report.Write(os.Stdout, quat.New(1, 2, 3, 4), quat.New(5, 6, 7, 8)); err != nil {
			log.Fatalln("failed to write report:", err)
		}
	}

	object, err := mesh.Shape(cfg.Shape, cfg.Size)
	if err != nil {
		log.Fatalln(err)
	}

	state := scene.New()
	state.Rate = cfg.Rate
	state.Angle = cfg.Angle

	if cfg.Snapshot != "" {
		img := raster.Snapshot(state, object, cfg.Width, cfg.Height)
		if err := raster.WritePNG(cfg.Snapshot, img); err != nil {
			log.Fatalln(err)
		}
		log.Printf("wrote %s (rotation %v)", cfg.Snapshot, state.Rotation())
		return
	}

	if err := run(cfg, state, object); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg config.Config, state *scene.State, object mesh.Lines) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	renderer, err := render.New(object)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	logOverlay(state)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if state.HandleKey(keys[key]) {
			logOverlay(state)
		}
	})

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount := 0

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		state.Advance(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		// FPS counter, refreshed every second
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | axis %.1f, %.1f, %.1f | FPS: %d",
				title, state.Axis.X, state.Axis.Y, state.Axis.Z, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		width, height := window.GetFramebufferSize()
		renderer.Draw(state, width, height)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

func logOverlay(s *scene.State) {
	for _, line := range s.Overlay() {
		log.Println(line)
	}
}
