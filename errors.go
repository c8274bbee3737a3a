package dpalpha

import "errors"

// Errors returned while bringing up the display pipeline. Where a
// kernel call failed, the returned error wraps both the sentinel and
// the underlying OS error.
var (
	ErrOpenDevice     = errors.New("dpalpha: failed to open display device")
	ErrResources      = errors.New("dpalpha: failed to get DRM resources")
	ErrNoDisplay      = errors.New("dpalpha: no connected connector found")
	ErrEncoder        = errors.New("dpalpha: failed to get encoder")
	ErrNoCrtc         = errors.New("dpalpha: failed to find CRTC")
	ErrCreateBuffer   = errors.New("dpalpha: failed to create dumb buffer")
	ErrAddFramebuffer = errors.New("dpalpha: failed to add framebuffer")
	ErrMapBuffer      = errors.New("dpalpha: failed to map dumb buffer")
	ErrMapPixels      = errors.New("dpalpha: failed to mmap framebuffer")
	ErrSetCrtc        = errors.New("dpalpha: failed to set CRTC")
)
