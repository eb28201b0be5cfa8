package hud

import (
	"fmt"
	"io/fs"

	"gltut/internal/graphics"
	renderer "gltut/internal/graphics/renderer"
	"gltut/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	VertShader = "font.vert"
	FragShader = "font.frag"

	fontPixels = 18
	margin     = 10
	lineStep   = 22
)

// HUD draws a small text overlay: scene title, frame rate, pause state
type HUD struct {
	title   string
	shaders fs.FS
	vao     uint32

	font    *graphics.FontRenderer
	visible bool

	lines []string
}

// NewHUD creates the overlay. vao is the VAO the scene draws with and is rebound
// after the text pass.
func NewHUD(title string, shaders fs.FS, vao uint32, visible bool) *HUD {
	return &HUD{title: title, shaders: shaders, vao: vao, visible: visible}
}

// Init bakes the font atlas and loads the text shader
func (h *HUD) Init() error {
	atlas, err := graphics.BakeFontAtlas(gomono.TTF, fontPixels)
	if err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	h.font, err = graphics.NewFontRenderer(atlas, h.shaders, VertShader, FragShader)
	if err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	return nil
}

// Toggle shows or hides the overlay
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the overlay is drawn
func (h *HUD) Visible() bool { return h.visible }

// Render draws the overlay on top of the scene
func (h *HUD) Render(ctx renderer.RenderContext) {
	if !h.visible || ctx.Width == 0 || ctx.Height == 0 {
		return
	}
	defer profiling.Track("renderer.hud")()

	h.lines = h.lines[:0]
	h.lines = append(h.lines, h.title, fmt.Sprintf("%d fps  t=%.0f", ctx.FPS, ctx.Time))
	if ctx.Paused {
		h.lines = append(h.lines, "paused")
	}

	h.font.SetViewport(ctx.Width, ctx.Height)
	h.font.RenderLines(h.lines, margin, margin+fontPixels, lineStep, 1, mgl32.Vec3{1, 1, 1}, h.vao)
}

// Dispose cleans up OpenGL resources
func (h *HUD) Dispose() {
	if h.font != nil {
		h.font.Dispose()
	}
}
