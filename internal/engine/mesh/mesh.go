// Package mesh uploads vertex data to OpenGL vertex arrays.
package mesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ErrEmptyMesh is returned when there is no vertex data to upload.
var ErrEmptyMesh = errors.New("mesh: no vertex data")

const floatSize = 4

// Layout lists the component count of each vertex attribute, in location
// order. Attributes are interleaved float32s.
type Layout []int

// Standard layouts.
var (
	PosColorUV = Layout{3, 3, 2} // aPos, aColor, aTexCoord
	PosUV      = Layout{3, 2}    // aPos, aTexCoord
)

// Floats returns the number of floats per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, size := range l {
		n += size
	}
	return n
}

// Stride returns the byte distance between consecutive vertices.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * floatSize)
}

// Offset returns the byte offset of attribute i inside a vertex.
func (l Layout) Offset(i int) uintptr {
	n := 0
	for _, size := range l[:i] {
		n += size
	}
	return uintptr(n * floatSize)
}

// VertexCount returns how many whole vertices vertices holds.
func (l Layout) VertexCount(vertices []float32) int32 {
	f := l.Floats()
	if f == 0 {
		return 0
	}
	return int32(len(vertices) / f)
}

// Validate checks that vertices is a whole number of vertices and every
// index refers to one of them.
func (l Layout) Validate(vertices []float32, indices []uint32) error {
	if len(vertices) == 0 {
		return ErrEmptyMesh
	}
	f := l.Floats()
	if f == 0 {
		return errors.New("mesh: empty layout")
	}
	if len(vertices)%f != 0 {
		return fmt.Errorf("mesh: %d floats is not a multiple of the %d-float layout", len(vertices), f)
	}
	count := uint32(len(vertices) / f)
	for i, idx := range indices {
		if idx >= count {
			return fmt.Errorf("mesh: index %d at position %d exceeds %d vertices", idx, i, count)
		}
	}
	return nil
}

// Mesh is a vertex array with its buffers.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// New uploads vertices (and indices, if any) and configures the attribute
// pointers described by layout. Requires a current GL context.
func New(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	if err := layout.Validate(vertices, indices); err != nil {
		return nil, err
	}

	m := &Mesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
		m.indexed = true
		m.count = int32(len(indices))
	} else {
		m.count = layout.VertexCount(vertices)
	}

	stride := layout.Stride()
	for i, size := range layout {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(size), gl.FLOAT, false, stride, layout.Offset(i))
		gl.EnableVertexAttribArray(uint32(i))
	}

	// The element buffer binding is part of the VAO; unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// Draw issues the draw call for the whole mesh as triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
