package drm

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/onotole/zynqmp-dp-alpha/internal/ioctl"
)

// ErrNoDumbBuffer is returned by Open for devices that cannot allocate
// CPU-addressable scanout buffers.
var ErrNoDumbBuffer = errors.New("drm: device does not support dumb buffers")

// Card is an open DRM display device.
type Card struct {
	f  *os.File
	fd uintptr
}

// Open opens a DRM card device by name, typically /dev/dri/card[0..x],
// and verifies that it supports dumb buffers.
func Open(name string) (*Card, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &Card{
		f:  f,
		fd: f.Fd(),
	}

	dumb := getCap{Capability: capDumbBuffer}
	if err = ioctl.Do(c.fd, reqGetCap, unsafe.Pointer(&dumb)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if dumb.Value == 0 {
		_ = f.Close()
		return nil, ErrNoDumbBuffer
	}

	return c, nil
}

func (c *Card) String() string {
	return fmt.Sprintf("DRM card %s", c.f.Name())
}

// Close closes the device.
func (c *Card) Close() error {
	return c.f.Close()
}

// Resources returns the card's mode-setting resources. The kernel is
// queried twice: once for the object counts and once more to fill the
// id arrays.
func (c *Card) Resources() (*Resources, error) {
	var count modeCardRes
	if err := ioctl.Do(c.fd, reqModeGetResources, unsafe.Pointer(&count)); err != nil {
		return nil, err
	}

	res := &Resources{
		MinWidth:  count.MinWidth,
		MaxWidth:  count.MaxWidth,
		MinHeight: count.MinHeight,
		MaxHeight: count.MaxHeight,
	}

	fill := count
	if count.CountFbs > 0 {
		res.Fbs = make([]uint32, count.CountFbs)
		fill.FbIDPtr = uint64(uintptr(unsafe.Pointer(&res.Fbs[0])))
	}
	if count.CountCrtcs > 0 {
		res.Crtcs = make([]uint32, count.CountCrtcs)
		fill.CrtcIDPtr = uint64(uintptr(unsafe.Pointer(&res.Crtcs[0])))
	}
	if count.CountConnectors > 0 {
		res.Connectors = make([]uint32, count.CountConnectors)
		fill.ConnectorIDPtr = uint64(uintptr(unsafe.Pointer(&res.Connectors[0])))
	}
	if count.CountEncoders > 0 {
		res.Encoders = make([]uint32, count.CountEncoders)
		fill.EncoderIDPtr = uint64(uintptr(unsafe.Pointer(&res.Encoders[0])))
	}
	if err := ioctl.Do(c.fd, reqModeGetResources, unsafe.Pointer(&fill)); err != nil {
		return nil, err
	}

	return res, nil
}

// Connector returns the connector with the given id, including its mode
// list and the encoders that can drive it. Property ids are not read.
func (c *Card) Connector(id uint32) (*Connector, error) {
	count := modeGetConnector{ConnectorID: id}
	if err := ioctl.Do(c.fd, reqModeGetConnector, unsafe.Pointer(&count)); err != nil {
		return nil, err
	}

	var (
		modes    []ModeInfo
		encoders []uint32
	)
	fill := count
	fill.PropsPtr, fill.PropValuesPtr, fill.CountProps = 0, 0, 0
	if count.CountModes > 0 {
		modes = make([]ModeInfo, count.CountModes)
		fill.ModesPtr = uint64(uintptr(unsafe.Pointer(&modes[0])))
	}
	if count.CountEncoders > 0 {
		encoders = make([]uint32, count.CountEncoders)
		fill.EncodersPtr = uint64(uintptr(unsafe.Pointer(&encoders[0])))
	}
	if err := ioctl.Do(c.fd, reqModeGetConnector, unsafe.Pointer(&fill)); err != nil {
		return nil, err
	}

	// Counts may shrink if the topology changed between the two calls.
	if n := int(fill.CountModes); n < len(modes) {
		modes = modes[:n]
	}
	if n := int(fill.CountEncoders); n < len(encoders) {
		encoders = encoders[:n]
	}

	return &Connector{
		ID:         id,
		EncoderID:  fill.EncoderID,
		Type:       fill.ConnectorType,
		TypeID:     fill.ConnectorTypeID,
		Connection: fill.Connection,
		MmWidth:    fill.MmWidth,
		MmHeight:   fill.MmHeight,
		Modes:      modes,
		Encoders:   encoders,
	}, nil
}

// Encoder returns the encoder with the given id.
func (c *Card) Encoder(id uint32) (*Encoder, error) {
	enc := modeGetEncoder{EncoderID: id}
	if err := ioctl.Do(c.fd, reqModeGetEncoder, unsafe.Pointer(&enc)); err != nil {
		return nil, err
	}
	return &Encoder{
		ID:             enc.EncoderID,
		Type:           enc.EncoderType,
		CrtcID:         enc.CrtcID,
		PossibleCrtcs:  enc.PossibleCrtcs,
		PossibleClones: enc.PossibleClones,
	}, nil
}

// CreateDumb allocates a dumb buffer of width×height pixels at the
// given color depth. The kernel chooses the row pitch and total size.
func (c *Card) CreateDumb(width, height, bpp uint32) (DumbBuffer, error) {
	dumb := modeCreateDumb{
		Height: height,
		Width:  width,
		Bpp:    bpp,
	}
	if err := ioctl.Do(c.fd, reqModeCreateDumb, unsafe.Pointer(&dumb)); err != nil {
		return DumbBuffer{}, err
	}
	return DumbBuffer{
		Handle: dumb.Handle,
		Pitch:  dumb.Pitch,
		Size:   dumb.Size,
	}, nil
}

// AddFB registers a single-plane framebuffer over an existing buffer
// and returns its id.
func (c *Card) AddFB(width, height, format, pitch, handle uint32) (uint32, error) {
	fb := modeFBCmd2{
		Width:       width,
		Height:      height,
		PixelFormat: format,
	}
	fb.Handles[0] = handle
	fb.Pitches[0] = pitch
	if err := ioctl.Do(c.fd, reqModeAddFB2, unsafe.Pointer(&fb)); err != nil {
		return 0, err
	}
	return fb.FbID, nil
}

// MapDumb prepares a dumb buffer for mapping and returns the offset to
// use with Mmap.
func (c *Card) MapDumb(handle uint32) (uint64, error) {
	m := modeMapDumb{Handle: handle}
	if err := ioctl.Do(c.fd, reqModeMapDumb, unsafe.Pointer(&m)); err != nil {
		return 0, err
	}
	return m.Offset, nil
}

// Mmap maps length bytes of the device at the given offset with shared
// read-write visibility.
func (c *Card) Mmap(offset, length uint64) ([]byte, error) {
	return unix.Mmap(int(c.fd), int64(offset), int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// Munmap releases a mapping returned by Mmap.
func (c *Card) Munmap(pix []byte) error {
	return unix.Munmap(pix)
}

// RemoveFB drops a framebuffer registration.
func (c *Card) RemoveFB(fb uint32) error {
	return ioctl.Do(c.fd, reqModeRmFB, unsafe.Pointer(&fb))
}

// DestroyDumb frees a dumb buffer allocation.
func (c *Card) DestroyDumb(handle uint32) error {
	dumb := modeDestroyDumb{Handle: handle}
	return ioctl.Do(c.fd, reqModeDestroyDumb, unsafe.Pointer(&dumb))
}

// SetCrtc configures a CRTC to scan out the given framebuffer at
// position (x, y) on the listed connectors, switching to the given
// mode. A nil mode keeps the CRTC mode unset.
func (c *Card) SetCrtc(crtcID, fbID, x, y uint32, connectors []uint32, mode *ModeInfo) error {
	crtc := modeCrtc{
		CrtcID: crtcID,
		FbID:   fbID,
		X:      x,
		Y:      y,
	}
	if len(connectors) > 0 {
		crtc.SetConnectorsPtr = uint64(uintptr(unsafe.Pointer(&connectors[0])))
		crtc.CountConnectors = uint32(len(connectors))
	}
	if mode != nil {
		crtc.Mode = *mode
		crtc.ModeValid = 1
	}
	return ioctl.Do(c.fd, reqModeSetCrtc, unsafe.Pointer(&crtc))
}
