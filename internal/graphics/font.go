package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"math"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlas is a baked single-channel glyph sheet plus per-glyph metadata
type FontAtlas struct {
	Image      *image.Alpha
	Characters map[rune]FontCharacter
}

const (
	atlasWidth   = 512
	atlasPadding = 1
)

// BakeFontAtlas rasterizes printable ASCII (32..126) from an OpenType font at
// fontPixels into an alpha image. No GL context is needed.
func BakeFontAtlas(ttf []byte, fontPixels int) (*FontAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	var runes []rune
	for r := rune(32); r <= rune(126); r++ {
		runes = append(runes, r)
	}

	// First pass: row-pack to find the required height
	offsetX, offsetY, rowHeight := 0, 0, 0
	for _, r := range runes {
		dr, mask, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || mask == nil || dr.Empty() {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + atlasPadding
			rowHeight = 0
		}
		offsetX += dr.Dx() + atlasPadding
		rowHeight = max(rowHeight, dr.Dy())
	}
	atlasHeight := nextPowerOfTwo(offsetY + rowHeight + atlasPadding)

	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight))
	characters := make(map[rune]FontCharacter, len(runes))

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY, rowHeight = 0, 0, 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		if mask == nil || dr.Empty() {
			// Space or non-drawable glyph; still record advance
			characters[r] = fc
			continue
		}

		gw, gh := dr.Dx(), dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + atlasPadding
			rowHeight = 0
		}
		draw.Draw(atlasImg, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), mask, maskp, draw.Src)

		fc.AtlasX = float32(offsetX)
		fc.AtlasY = float32(offsetY)
		fc.Width = float32(gw)
		fc.Height = float32(gh)
		characters[r] = fc

		offsetX += gw + atlasPadding
		rowHeight = max(rowHeight, gh)
	}

	return &FontAtlas{Image: atlasImg, Characters: characters}, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Measure returns the width and height in pixels the text will occupy at the given scale
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			fc = a.Characters[' ']
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

// Vertices builds two triangles per glyph (x, y, u, v) with the baseline starting at (x, y)
func (a *FontAtlas) Vertices(text string, x, y, scale float32) []float32 {
	w := float32(a.Image.Rect.Dx())
	h := float32(a.Image.Rect.Dy())
	vertices := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 && fc.Height > 0 {
			xPos := x + fc.BearingX*scale
			yPos := y - fc.BearingY*scale
			qw := fc.Width * scale
			qh := fc.Height * scale
			u0, v0 := fc.AtlasX/w, fc.AtlasY/h
			u1, v1 := (fc.AtlasX+fc.Width)/w, (fc.AtlasY+fc.Height)/h
			vertices = append(vertices,
				xPos, yPos+qh, u0, v1,
				xPos, yPos, u0, v0,
				xPos+qw, yPos, u1, v0,

				xPos, yPos+qh, u0, v1,
				xPos+qw, yPos, u1, v0,
				xPos+qw, yPos+qh, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}

// FontRenderer draws text in pixel coordinates (origin top-left) from a baked atlas
type FontRenderer struct {
	atlas      *FontAtlas
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and loads the font shader pair from fsys
func NewFontRenderer(atlas *FontAtlas, fsys fs.FS, vertPath, fragPath string) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(fsys, vertPath, fragPath)
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	img := fr.atlas.Image
	gl.GenTextures(1, &fr.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetViewport updates the pixel-space projection
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// RenderLines draws lines of text starting at (x, yStart), lineStep pixels apart.
// Depth testing is suspended and blending enabled for the duration; the caller's
// VAO binding is restored afterwards through restoreVAO.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3, restoreVAO uint32) {
	var vertices []float32
	y := yStart
	for _, line := range lines {
		vertices = append(vertices, fr.atlas.Vertices(line, x, y, scale)...)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	depth := gl.IsEnabled(gl.DEPTH_TEST)
	blend := gl.IsEnabled(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// orphan then fill to avoid stalling on the previous frame's draw
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	withFilledPolygons(func() {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))
	})

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(restoreVAO)
	if depth {
		gl.Enable(gl.DEPTH_TEST)
	}
	if !blend {
		gl.Disable(gl.BLEND)
	}
}

// polygon mode hooks, replaced in tests that run without a GL context
var (
	polygonMode = func() int32 {
		var mode [2]int32
		gl.GetIntegerv(gl.POLYGON_MODE, &mode[0])
		return mode[0]
	}
	setPolygonMode = func(mode uint32) { gl.PolygonMode(gl.FRONT_AND_BACK, mode) }
)

// withFilledPolygons runs draw with polygons filled, so text stays readable in
// wireframe mode, and puts the previous mode back afterwards
func withFilledPolygons(draw func()) {
	prev := polygonMode()
	if prev == gl.FILL {
		draw()
		return
	}
	setPolygonMode(gl.FILL)
	defer setPolygonMode(uint32(prev))
	draw()
}

// Dispose releases GPU resources
func (fr *FontRenderer) Dispose() {
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
	}
	fr.shader.Delete()
}
