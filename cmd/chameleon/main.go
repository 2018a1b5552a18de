// Package main is the Chameleon mesh painter: paint on a 3D model by
// projecting brush strokes through an orthographic camera, navigate
// with trackball gestures in orthographic or perspective view.
package main

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder registration
	"os"
	"runtime"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp" // BMP decoder registration

	"github.com/footsoldier/chameleon/internal/config"
	"github.com/footsoldier/chameleon/internal/engine/brush"
	"github.com/footsoldier/chameleon/internal/engine/camera"
	"github.com/footsoldier/chameleon/internal/engine/export"
	"github.com/footsoldier/chameleon/internal/engine/input"
	"github.com/footsoldier/chameleon/internal/engine/mesh"
	"github.com/footsoldier/chameleon/internal/engine/renderer"
	"github.com/footsoldier/chameleon/internal/engine/texture"
	"github.com/footsoldier/chameleon/internal/engine/window"
	"github.com/footsoldier/chameleon/internal/logger"
	"github.com/footsoldier/chameleon/internal/painter"
	"github.com/footsoldier/chameleon/pkg/trackball"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Write config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config written to", config.ConfigDir())
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Chameleon Mesh Painter ===")

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	m := buildMesh(cfg.Mesh)
	logger.Info("mesh built",
		zap.String("shape", cfg.Mesh.Shape),
		zap.Int("faces", len(m.Faces)),
		zap.Float32("radius", m.BoundingRadius()),
	)

	width, height := win.GetSize()
	box := trackball.Box{Width: float32(width), Height: float32(height)}

	ortho := camera.New(camera.Config{
		Kind:        camera.Orthographic,
		FOV:         cfg.Camera.FOV,
		RotateSpeed: cfg.Camera.RotateSpeed,
		PanSpeed:    cfg.Camera.PanSpeed,
		ZoomSpeed:   cfg.Camera.ZoomSpeed,
	}, box, m.BoundingRadius())
	persp := camera.New(camera.Config{
		Kind:        camera.Perspective,
		FOV:         cfg.Camera.FOV,
		RotateSpeed: cfg.Camera.RotateSpeed,
		PanSpeed:    cfg.Camera.PanSpeed,
		ZoomSpeed:   cfg.Camera.ZoomSpeed,
	}, box, m.BoundingRadius())

	brushColor, _ := config.ParseHexColor(cfg.Brush.Color)
	canvasColor, _ := config.ParseHexColor(cfg.Paint.Canvas)
	background, _ := config.ParseHexColor(cfg.Paint.Background)

	b := brush.NewEngine(brushColor, cfg.Brush.Radius)
	textures := texture.NewManager(m, ortho, b, width, height, canvasColor, canvasColor)

	if cfg.Paint.SeedImage != "" {
		if img, err := loadImage(cfg.Paint.SeedImage); err != nil {
			logger.Warn("seed image skipped", zap.String("path", cfg.Paint.SeedImage), zap.Error(err))
		} else {
			textures.Seed(img)
			logger.Info("canvas seeded", zap.String("path", cfg.Paint.SeedImage))
		}
	}

	exporter := export.NewWriter(cfg.Export.Dir, cfg.Export.Prefix)

	kind := camera.Orthographic
	if cfg.Camera.Projection == config.ProjectionPerspective {
		kind = camera.Perspective
	}
	session := painter.NewSession(ortho, persp, textures, exporter, painter.Config{
		Kind:       kind,
		AutoExport: cfg.Export.OnStrokeEnd,
	})

	rend, err := renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: background,
	}, m, textures)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer rend.Close()

	var updates <-chan config.Update
	if path := config.ActivePath(); path != "" {
		watcher, err := config.Watch(path)
		if err != nil {
			logger.Warn("config watcher disabled", zap.Error(err))
		} else {
			defer watcher.Close()
			updates = watcher.Updates()
			logger.Info("watching config", zap.String("path", path))
		}
	}

	in := input.New()
	logger.Info("entering frame loop")

	running := true
	for running {
		if quit := in.Update(); quit {
			running = false
		}
		for _, ev := range in.Events() {
			if ev.Type == input.EventKeyDown && ev.Key == input.KeyEscape {
				running = false
				continue
			}
			session.HandleEvent(ev)
			if ev.Type == input.EventResize {
				rend.Resize(ev.Width, ev.Height)
			}
		}

		select {
		case u := <-updates:
			applyReload(u, b, ortho, persp, rend, exporter, session)
		default:
		}

		session.Update()
		rend.Draw(session.ActiveCamera().ViewProjection())
		win.SwapBuffers()
	}

	logger.Info("shutting down")
	return nil
}

// buildMesh creates the configured procedural mesh. The shape name was
// validated at config load.
func buildMesh(cfg config.MeshConfig) *mesh.Mesh {
	switch cfg.Shape {
	case config.ShapeBox:
		side := cfg.Radius * 2
		return mesh.NewBox(side, side, side)
	case config.ShapeTorus:
		return mesh.NewTorus(cfg.Radius, cfg.Radius*0.4, cfg.Segments, cfg.Segments/2)
	default:
		return mesh.NewSphere(cfg.Radius, cfg.Segments, cfg.Segments/2)
	}
}

// applyReload applies a live config reload to the running components.
// Only settings that are safe to change mid-session are picked up;
// window, mesh and logging changes need a restart.
func applyReload(u config.Update, b *brush.Engine, ortho, persp *camera.Controller, rend *renderer.Renderer, exporter *export.Writer, session *painter.Session) {
	if u.Err != nil {
		logger.Warn("config reload rejected", zap.Error(u.Err))
		return
	}
	cfg := u.Cfg

	if col, err := config.ParseHexColor(cfg.Brush.Color); err == nil {
		b.SetColor(col)
	}
	b.SetRadius(cfg.Brush.Radius)

	ortho.SetSpeeds(cfg.Camera.RotateSpeed, cfg.Camera.PanSpeed, cfg.Camera.ZoomSpeed)
	persp.SetSpeeds(cfg.Camera.RotateSpeed, cfg.Camera.PanSpeed, cfg.Camera.ZoomSpeed)

	if bg, err := config.ParseHexColor(cfg.Paint.Background); err == nil {
		rend.SetBackground(bg)
	}

	exporter.SetDir(cfg.Export.Dir)
	session.SetAutoExport(cfg.Export.OnStrokeEnd)

	logger.Info("config reloaded",
		zap.Float32("brush_radius", cfg.Brush.Radius),
		zap.String("brush_color", cfg.Brush.Color),
	)
}

// loadImage decodes a PNG or BMP file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
