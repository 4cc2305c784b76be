// Package texturetest provides an in-memory texture.Device for tests.
package texturetest

import "github.com/Faultbox/drone-scene/internal/engine/texture"

// Device hands out sequential handles and remembers bindings.
type Device struct {
	Live    map[uint32]*texture.Image
	Bound   map[int]uint32
	Binds   []Bind
	Deleted []uint32

	// CreateErr, when set, is returned by CreateTexture.
	CreateErr error

	next uint32
}

// Bind is one recorded BindTexture call.
type Bind struct {
	Unit   int
	Handle uint32
}

func NewDevice() *Device {
	return &Device{
		Live:  make(map[uint32]*texture.Image),
		Bound: make(map[int]uint32),
	}
}

func (d *Device) CreateTexture(img *texture.Image) (uint32, error) {
	if d.CreateErr != nil {
		return 0, d.CreateErr
	}
	d.next++
	d.Live[d.next] = img
	return d.next, nil
}

func (d *Device) BindTexture(unit int, handle uint32) {
	d.Bound[unit] = handle
	d.Binds = append(d.Binds, Bind{Unit: unit, Handle: handle})
}

func (d *Device) DeleteTexture(handle uint32) {
	delete(d.Live, handle)
	d.Deleted = append(d.Deleted, handle)
}

func (d *Device) IsTexture(handle uint32) bool {
	_, ok := d.Live[handle]
	return ok
}
