package dpalpha

import (
	"fmt"
	"image"

	"github.com/onotole/zynqmp-dp-alpha/drm"
	"github.com/onotole/zynqmp-dp-alpha/pixel"
)

const surfaceBpp = 32 // ARGB8888

// Surface is a screen-sized ARGB8888 dumb buffer, registered as a
// framebuffer and mapped into memory. It borrows the output's device
// and must be closed before it.
type Surface struct {
	dev    Device
	handle uint32
	fb     uint32
	width  uint32
	height uint32
	pitch  uint32
	pix    []byte
	rel    releaser
}

// newSurface acquires the buffer in four steps: allocate, register,
// request the map offset, map. Each acquired step pushes its release,
// so a failure halfway unwinds the earlier steps in reverse order.
func newSurface(dev Device, width, height uint32) (*Surface, error) {
	s := &Surface{
		dev:    dev,
		width:  width,
		height: height,
	}

	buf, err := dev.CreateDumb(width, height, surfaceBpp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateBuffer, err)
	}
	s.handle = buf.Handle
	s.pitch = buf.Pitch
	s.rel.add(func() error { return s.dev.DestroyDumb(buf.Handle) })

	fb, err := dev.AddFB(width, height, drm.FormatARGB8888, buf.Pitch, buf.Handle)
	if err != nil {
		_ = s.rel.release()
		return nil, fmt.Errorf("%w: %w", ErrAddFramebuffer, err)
	}
	s.fb = fb
	s.rel.add(func() error { return s.dev.RemoveFB(fb) })

	// The map offset is not a resource of its own, nothing to release.
	offset, err := dev.MapDumb(buf.Handle)
	if err != nil {
		_ = s.rel.release()
		return nil, fmt.Errorf("%w: %w", ErrMapBuffer, err)
	}

	pix, err := dev.Mmap(offset, buf.Size)
	if err != nil {
		_ = s.rel.release()
		return nil, fmt.Errorf("%w: %w", ErrMapPixels, err)
	}
	s.pix = pix
	s.rel.add(func() error {
		s.pix = nil
		return s.dev.Munmap(pix)
	})

	return s, nil
}

// FramebufferID returns the kernel framebuffer id to bind.
func (s *Surface) FramebufferID() uint32 {
	return s.fb
}

// Bounds is the surface bounding box (dimensions).
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.width), int(s.height))
}

// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
func (s *Surface) Stride() int {
	return int(s.pitch)
}

// FillChessboard draws the chessboard used to judge the compositor's
// alpha handling. Light tiles carry half-transparent white in the given
// convention, dark tiles opaque mid-gray.
func (s *Surface) FillChessboard(mode AlphaMode) {
	pixel.FillChessboard(s.pix, int(s.width), int(s.height), int(s.pitch), tileSize, lightTile(mode), darkTile)
}

// Close unmaps the pixels, removes the framebuffer and destroys the
// buffer, in that order. Safe on partially constructed surfaces and on
// repeated calls. The device stays open.
func (s *Surface) Close() error {
	return s.rel.release()
}
