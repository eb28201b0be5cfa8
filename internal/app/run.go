package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gltut/assets"
	"gltut/internal/config"
	"gltut/internal/graphics"
	"gltut/internal/graphics/renderables/hud"
	"gltut/internal/graphics/renderables/mesh"
	renderer "gltut/internal/graphics/renderer"
	"gltut/internal/input"
	"gltut/internal/motion"
	"gltut/internal/scene"
)

// ShaderFS returns the file system shader files are loaded from. Files in dir
// take precedence; anything missing there comes from the embedded set.
func ShaderFS(dir string) (fs.FS, error) {
	if dir == "" {
		return assets.Shaders(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("shader dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("shader dir %s is not a directory", dir)
	}
	return layeredFS{top: os.DirFS(dir), base: assets.Shaders()}, nil
}

type layeredFS struct {
	top, base fs.FS
}

func (l layeredFS) Open(name string) (fs.File, error) {
	f, err := l.top.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return l.base.Open(name)
	}
	return f, err
}

// Run opens a window, draws desc until the user exits and releases everything
// on the way out. Any error is a startup failure; the loop itself cannot fail.
func Run(s config.Settings, desc scene.Description) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	shaders, err := ShaderFS(s.ShaderDir)
	if err != nil {
		return err
	}

	title := s.Title
	if title == "" {
		title = desc.Title
	}
	window, err := OpenWindow(s, title)
	if err != nil {
		return err
	}
	defer window.Close()

	vao := graphics.NewVertexArray()
	defer vao.Delete()

	renderables := make([]renderer.Renderable, 0, len(desc.Targets)+1)
	for _, target := range desc.Targets {
		renderables = append(renderables, mesh.NewMesh(shaders, target))
	}
	overlay := hud.NewHUD(title, shaders, vao.ID, s.ShowHUD)
	renderables = append(renderables, overlay)

	r, err := renderer.NewRenderer(renderer.State{
		ClearColor: desc.ClearColor,
		DepthTest:  desc.DepthTest,
		Blend:      desc.Blend,
	}, renderables...)
	if err != nil {
		return err
	}
	defer r.Dispose()

	vao.Bind()
	window.OnResize(r.SetViewport)

	loop := &Loop{
		Surface:   window,
		Renderer:  r,
		Overlay:   overlay,
		Scene:     desc,
		Clock:     motion.NewClock(s.AnimationMode(), s.ReferenceHz),
		Input:     input.NewInputManager(),
		Limiter:   NewFPSLimiter(),
		LogFPS:    s.LogFPS,
		SlowFrame: time.Duration(s.SlowFrameMs) * time.Millisecond,
	}
	loop.Run()
	return nil
}
