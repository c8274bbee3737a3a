// Package drm provides raw access to a DRM/KMS display device.
//
// Only the slice of the kernel interface needed to discover the active
// display pipeline and scan out a dumb buffer is covered: mode-setting
// resource queries, dumb buffer management and CRTC configuration.
package drm

import "fmt"

// Connector connection states.
//
// Definitions from <drm/drm_mode.h>
const (
	Connected         uint32 = 1
	Disconnected      uint32 = 2
	UnknownConnection uint32 = 3
)

// FormatARGB8888 is the fourcc code "AR24": 32 bits per pixel, 8 bits
// per channel, alpha first, stored little-endian.
//
// Definition from <drm/drm_fourcc.h>
const FormatARGB8888 = uint32('A') | uint32('R')<<8 | uint32('2')<<16 | uint32('4')<<24

// Resources enumerates the mode-setting objects of a card.
type Resources struct {
	Fbs        []uint32
	Crtcs      []uint32
	Connectors []uint32
	Encoders   []uint32
	MinWidth   uint32
	MaxWidth   uint32
	MinHeight  uint32
	MaxHeight  uint32
}

// Connector describes one physical display connector and the modes
// advertised by the attached display.
type Connector struct {
	ID         uint32
	EncoderID  uint32 // currently attached encoder, 0 if none
	Type       uint32
	TypeID     uint32
	Connection uint32
	MmWidth    uint32 // physical size in millimeters
	MmHeight   uint32
	Modes      []ModeInfo
	Encoders   []uint32
}

// Encoder converts a CRTC pixel stream for delivery to connectors.
type Encoder struct {
	ID             uint32
	Type           uint32
	CrtcID         uint32 // currently bound CRTC, 0 if none
	PossibleCrtcs  uint32 // bitmask over the CRTC positions in Resources
	PossibleClones uint32
}

// DumbBuffer is a kernel-allocated CPU-addressable scanout buffer.
type DumbBuffer struct {
	Handle uint32
	Pitch  uint32 // bytes per row, including alignment padding
	Size   uint64
}

// ModeInfo describes one display timing mode. The layout matches the
// kernel's wire format, it is passed to the mode-setting ioctls as-is.
//
// Definitions from <drm/drm_mode.h>
type ModeInfo struct {
	Clock      uint32
	Hdisplay   uint16
	HsyncStart uint16
	HsyncEnd   uint16
	Htotal     uint16
	Hskew      uint16
	Vdisplay   uint16
	VsyncStart uint16
	VsyncEnd   uint16
	Vtotal     uint16
	Vscan      uint16
	Vrefresh   uint32
	Flags      uint32
	Type       uint32
	Name       [32]uint8
}

func (m ModeInfo) String() string {
	return fmt.Sprintf("%dx%d@%dHz", m.Hdisplay, m.Vdisplay, m.Vrefresh)
}
