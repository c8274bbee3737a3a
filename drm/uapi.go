package drm

import (
	"unsafe"

	"github.com/onotole/zynqmp-dp-alpha/internal/ioctl"
)

// Definitions from <drm/drm.h> and <drm/drm_mode.h>

const drmIOCTLBase = 'd'

// Capabilities for the DRM_IOCTL_GET_CAP request.
const capDumbBuffer = 0x1

var (
	reqGetCap           = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(getCap{})), drmIOCTLBase, 0x0c)
	reqModeGetResources = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeCardRes{})), drmIOCTLBase, 0xa0)
	reqModeSetCrtc      = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeCrtc{})), drmIOCTLBase, 0xa2)
	reqModeGetEncoder   = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeGetEncoder{})), drmIOCTLBase, 0xa6)
	reqModeGetConnector = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeGetConnector{})), drmIOCTLBase, 0xa7)
	reqModeRmFB         = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(uint32(0))), drmIOCTLBase, 0xaf)
	reqModeCreateDumb   = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeCreateDumb{})), drmIOCTLBase, 0xb2)
	reqModeMapDumb      = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeMapDumb{})), drmIOCTLBase, 0xb3)
	reqModeDestroyDumb  = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeDestroyDumb{})), drmIOCTLBase, 0xb4)
	reqModeAddFB2       = ioctl.New(ioctl.Read|ioctl.Write, uint16(unsafe.Sizeof(modeFBCmd2{})), drmIOCTLBase, 0xb8)
)

type getCap struct {
	Capability uint64
	Value      uint64
}

type modeCardRes struct {
	FbIDPtr         uint64
	CrtcIDPtr       uint64
	ConnectorIDPtr  uint64
	EncoderIDPtr    uint64
	CountFbs        uint32
	CountCrtcs      uint32
	CountConnectors uint32
	CountEncoders   uint32
	MinWidth        uint32
	MaxWidth        uint32
	MinHeight       uint32
	MaxHeight       uint32
}

type modeGetConnector struct {
	EncodersPtr   uint64
	ModesPtr      uint64
	PropsPtr      uint64
	PropValuesPtr uint64

	CountModes    uint32
	CountProps    uint32
	CountEncoders uint32

	EncoderID       uint32 // current encoder
	ConnectorID     uint32
	ConnectorType   uint32
	ConnectorTypeID uint32

	Connection uint32
	MmWidth    uint32
	MmHeight   uint32
	Subpixel   uint32

	Pad uint32
}

type modeGetEncoder struct {
	EncoderID      uint32
	EncoderType    uint32
	CrtcID         uint32
	PossibleCrtcs  uint32
	PossibleClones uint32
}

type modeCrtc struct {
	SetConnectorsPtr uint64
	CountConnectors  uint32
	CrtcID           uint32
	FbID             uint32
	X                uint32
	Y                uint32
	GammaSize        uint32
	ModeValid        uint32
	Mode             ModeInfo
}

type modeCreateDumb struct {
	Height uint32
	Width  uint32
	Bpp    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

type modeMapDumb struct {
	Handle uint32
	Pad    uint32
	Offset uint64 // fake offset to use with mmap
}

type modeDestroyDumb struct {
	Handle uint32
}

type modeFBCmd2 struct {
	FbID        uint32
	Width       uint32
	Height      uint32
	PixelFormat uint32
	Flags       uint32
	Handles     [4]uint32
	Pitches     [4]uint32
	Offsets     [4]uint32
	_           uint32 // Modifier must stay 64-bit aligned
	Modifier    [4]uint64
}
