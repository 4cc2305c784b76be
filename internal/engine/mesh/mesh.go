package mesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/drone-scene/internal/logger"
)

// Mesh is geometry resident on the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Upload creates the vertex array and buffers for g. Requires a current GL
// context.
func Upload(g Geometry) (*Mesh, error) {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil, errors.New("empty geometry")
	}

	m := &Mesh{indexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*vertexSize, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m, nil
}

// Draw issues the draw call.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete frees the GPU buffers.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// Library holds one uploaded mesh per kind. A kind only needs to be loaded
// once no matter how often it is drawn.
type Library struct {
	meshes map[Kind]*Mesh
	log    *zap.Logger
}

func NewLibrary() *Library {
	return &Library{meshes: make(map[Kind]*Mesh), log: logger.Named("mesh")}
}

// Load builds and uploads kind. Loading a kind twice is a no-op.
func (l *Library) Load(kind Kind) error {
	if _, ok := l.meshes[kind]; ok {
		return nil
	}
	g := Build(kind)
	m, err := Upload(g)
	if err != nil {
		return fmt.Errorf("upload %s: %w", kind, err)
	}
	l.meshes[kind] = m
	l.log.Debug("mesh uploaded",
		zap.Stringer("kind", kind),
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("indices", len(g.Indices)),
	)
	return nil
}

// Draw draws kind. Kinds that were never loaded are skipped.
func (l *Library) Draw(kind Kind) {
	m, ok := l.meshes[kind]
	if !ok {
		l.log.Debug("draw of unloaded mesh skipped", zap.Stringer("kind", kind))
		return
	}
	m.Draw()
}

// Release deletes every mesh.
func (l *Library) Release() {
	for kind, m := range l.meshes {
		m.Delete()
		delete(l.meshes, kind)
	}
}
