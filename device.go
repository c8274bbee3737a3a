// Package dpalpha drives a single display output through the kernel
// mode-setting interface, showing a chessboard test pattern that
// exposes how the pipeline composites alpha.
package dpalpha

import (
	"os"

	"github.com/onotole/zynqmp-dp-alpha/drm"
)

// DefaultDevice is the primary display device node.
const DefaultDevice = "/dev/dri/card0"

var debug bool

func init() {
	debug = os.Getenv("DPALPHA_DEBUG") != ""
}

// Device is the display device interface used by the output controller
// and the pixel surface. The controller owns the device; the surface
// only borrows it and never closes it.
type Device interface {
	// Resources returns the device's mode-setting resources.
	Resources() (*drm.Resources, error)

	// Connector returns the connector with the given id.
	Connector(id uint32) (*drm.Connector, error)

	// Encoder returns the encoder with the given id.
	Encoder(id uint32) (*drm.Encoder, error)

	// CreateDumb allocates a CPU-addressable scanout buffer.
	CreateDumb(width, height, bpp uint32) (drm.DumbBuffer, error)

	// AddFB registers a buffer as a framebuffer and returns its id.
	AddFB(width, height, format, pitch, handle uint32) (uint32, error)

	// MapDumb returns the mmap offset for a dumb buffer.
	MapDumb(handle uint32) (uint64, error)

	// Mmap maps length bytes of the device at the given offset.
	Mmap(offset, length uint64) ([]byte, error)

	// Munmap releases a mapping returned by Mmap.
	Munmap(pix []byte) error

	// RemoveFB drops a framebuffer registration.
	RemoveFB(fb uint32) error

	// DestroyDumb frees a buffer allocation.
	DestroyDumb(handle uint32) error

	// SetCrtc binds a framebuffer to a CRTC on the listed connectors.
	SetCrtc(crtcID, fbID, x, y uint32, connectors []uint32, mode *drm.ModeInfo) error

	// Close closes the device.
	Close() error
}

// Interface check.
var _ Device = (*drm.Card)(nil)
