// Package shadertest provides a uniform writer that records instead of
// talking to GL.
package shadertest

import (
	"github.com/Faultbox/drone-scene/pkg/math"
)

// Call is one recorded uniform write.
type Call struct {
	Name  string
	Value any
}

// Recorder implements shader.Uniforms. Values holds the latest value per
// uniform; Calls holds every write in order.
type Recorder struct {
	Values map[string]any
	Calls  []Call
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Values: make(map[string]any)}
}

func (r *Recorder) set(name string, v any) {
	r.Values[name] = v
	r.Calls = append(r.Calls, Call{Name: name, Value: v})
}

func (r *Recorder) SetInt(name string, v int32)      { r.set(name, v) }
func (r *Recorder) SetBool(name string, v bool)      { r.set(name, v) }
func (r *Recorder) SetFloat(name string, v float32)  { r.set(name, v) }
func (r *Recorder) SetVec2(name string, v math.Vec2) { r.set(name, v) }
func (r *Recorder) SetVec3(name string, v math.Vec3) { r.set(name, v) }
func (r *Recorder) SetVec4(name string, v math.Vec4) { r.set(name, v) }
func (r *Recorder) SetMat4(name string, m math.Mat4) { r.set(name, m) }

// Snapshot copies the current uniform values.
func (r *Recorder) Snapshot() map[string]any {
	out := make(map[string]any, len(r.Values))
	for k, v := range r.Values {
		out[k] = v
	}
	return out
}

// Bool returns the latest value of a bool uniform and whether it was set.
func (r *Recorder) Bool(name string) (bool, bool) {
	v, ok := r.Values[name].(bool)
	return v, ok
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Values = make(map[string]any)
	r.Calls = nil
}
