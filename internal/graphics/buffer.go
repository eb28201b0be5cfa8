package graphics

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexArray wraps the vertex array object a core profile requires to be bound
// before any attribute setup.
type VertexArray struct {
	ID uint32
}

// NewVertexArray creates and binds a VAO
func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.ID)
	gl.BindVertexArray(va.ID)
	return va
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.ID)
}

func (va *VertexArray) Delete() {
	if va.ID != 0 {
		gl.DeleteVertexArrays(1, &va.ID)
		va.ID = 0
	}
}

// VertexBuffer is a static array buffer of tightly packed 3-component floats
type VertexBuffer struct {
	ID    uint32
	Count int32 // vertices
}

// NewVertexBuffer uploads data once with STATIC_DRAW
func NewVertexBuffer(data []float32) *VertexBuffer {
	vb := &VertexBuffer{Count: int32(len(data) / 3)}
	gl.GenBuffers(1, &vb.ID)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.ID)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb
}

// Bind enables attrib and points it at this buffer
func (vb *VertexBuffer) Bind(attrib uint32) {
	gl.EnableVertexAttribArray(attrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.ID)
	gl.VertexAttribPointerWithOffset(attrib, 3, gl.FLOAT, false, 0, 0)
}

// Unbind disables attrib
func (vb *VertexBuffer) Unbind(attrib uint32) {
	gl.DisableVertexAttribArray(attrib)
}

func (vb *VertexBuffer) Delete() {
	if vb.ID != 0 {
		gl.DeleteBuffers(1, &vb.ID)
		vb.ID = 0
	}
}
