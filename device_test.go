package dpalpha

import (
	"errors"
	"fmt"

	"github.com/onotole/zynqmp-dp-alpha/drm"
)

// fakeDevice implements Device in memory. It records every call in
// order and lets tests inject failures per operation.
type fakeDevice struct {
	resources  *drm.Resources
	connectors map[uint32]*drm.Connector
	encoders   map[uint32]*drm.Encoder

	resourcesErr error
	createErr    error
	addFBErr     error
	mapErr       error
	mmapErr      error
	setCrtcErr   error

	pitch uint32 // overrides the natural width*4 pitch when set

	calls      []string
	nextHandle uint32
	nextFB     uint32
	mapped     []byte
	crtcCalls  []crtcCall
	closed     int
}

type crtcCall struct {
	crtc       uint32
	fb         uint32
	x, y       uint32
	connectors []uint32
	mode       drm.ModeInfo
}

// testDevice returns a fake with one 1920x1080 display on connector 30,
// driven by encoder 20 which is already bound to CRTC 41.
func testDevice() *fakeDevice {
	return &fakeDevice{
		resources: &drm.Resources{
			Crtcs:      []uint32{40, 41},
			Connectors: []uint32{30},
			Encoders:   []uint32{20},
		},
		connectors: map[uint32]*drm.Connector{
			30: {ID: 30, EncoderID: 20, Connection: drm.Connected, Modes: []drm.ModeInfo{testMode(1920, 1080)}},
		},
		encoders: map[uint32]*drm.Encoder{
			20: {ID: 20, CrtcID: 41, PossibleCrtcs: 0x3},
		},
	}
}

func testMode(w, h uint16) drm.ModeInfo {
	m := drm.ModeInfo{Hdisplay: w, Vdisplay: h, Vrefresh: 60}
	copy(m.Name[:], fmt.Sprintf("%dx%d", w, h))
	return m
}

func (d *fakeDevice) record(name string) {
	d.calls = append(d.calls, name)
}

// countCalls returns how often the named call was recorded.
func (d *fakeDevice) countCalls(name string) int {
	var n int
	for _, call := range d.calls {
		if call == name {
			n++
		}
	}
	return n
}

func (d *fakeDevice) Resources() (*drm.Resources, error) {
	d.record("resources")
	if d.resourcesErr != nil {
		return nil, d.resourcesErr
	}
	return d.resources, nil
}

func (d *fakeDevice) Connector(id uint32) (*drm.Connector, error) {
	d.record("connector")
	if conn, ok := d.connectors[id]; ok {
		return conn, nil
	}
	return nil, errors.New("no such connector")
}

func (d *fakeDevice) Encoder(id uint32) (*drm.Encoder, error) {
	d.record("encoder")
	if enc, ok := d.encoders[id]; ok {
		return enc, nil
	}
	return nil, errors.New("no such encoder")
}

func (d *fakeDevice) CreateDumb(width, height, bpp uint32) (drm.DumbBuffer, error) {
	d.record("create-dumb")
	if d.createErr != nil {
		return drm.DumbBuffer{}, d.createErr
	}
	pitch := d.pitch
	if pitch == 0 {
		pitch = width * bpp / 8
	}
	d.nextHandle++
	return drm.DumbBuffer{
		Handle: d.nextHandle,
		Pitch:  pitch,
		Size:   uint64(pitch) * uint64(height),
	}, nil
}

func (d *fakeDevice) AddFB(width, height, format, pitch, handle uint32) (uint32, error) {
	d.record("add-fb")
	if d.addFBErr != nil {
		return 0, d.addFBErr
	}
	d.nextFB++
	return 1000 + d.nextFB, nil
}

func (d *fakeDevice) MapDumb(handle uint32) (uint64, error) {
	d.record("map-dumb")
	if d.mapErr != nil {
		return 0, d.mapErr
	}
	return uint64(handle) << 20, nil
}

func (d *fakeDevice) Mmap(offset, length uint64) ([]byte, error) {
	d.record("mmap")
	if d.mmapErr != nil {
		return nil, d.mmapErr
	}
	d.mapped = make([]byte, length)
	return d.mapped, nil
}

func (d *fakeDevice) Munmap(pix []byte) error {
	d.record("munmap")
	return nil
}

func (d *fakeDevice) RemoveFB(fb uint32) error {
	d.record("rm-fb")
	return nil
}

func (d *fakeDevice) DestroyDumb(handle uint32) error {
	d.record("destroy-dumb")
	return nil
}

func (d *fakeDevice) SetCrtc(crtcID, fbID, x, y uint32, connectors []uint32, mode *drm.ModeInfo) error {
	d.record("set-crtc")
	if d.setCrtcErr != nil {
		return d.setCrtcErr
	}
	call := crtcCall{crtc: crtcID, fb: fbID, x: x, y: y, connectors: connectors}
	if mode != nil {
		call.mode = *mode
	}
	d.crtcCalls = append(d.crtcCalls, call)
	return nil
}

func (d *fakeDevice) Close() error {
	d.record("close")
	d.closed++
	return nil
}

// Interface check.
var _ Device = (*fakeDevice)(nil)
