package dpalpha

import (
	"fmt"
	"log"

	"github.com/onotole/zynqmp-dp-alpha/drm"
)

// Output is the resolved display pipeline of the first connected
// connector: the connector itself, its first advertised mode, the
// attached encoder and the CRTC that drives it.
type Output struct {
	dev  Device
	res  *drm.Resources
	conn *drm.Connector
	enc  *drm.Encoder
	mode drm.ModeInfo
	crtc uint32
}

// Open opens the display device and resolves the output pipeline on
// the first connected connector.
func Open(name string) (*Output, error) {
	card, err := drm.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDevice, err)
	}

	out, err := newOutput(card)
	if err != nil {
		_ = card.Close()
		return nil, err
	}
	return out, nil
}

// newOutput discovers the display pipeline on an open device. On
// failure nothing is retained; closing the device stays with the
// caller.
func newOutput(dev Device) (*Output, error) {
	res, err := dev.Resources()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResources, err)
	}
	if len(res.Connectors) == 0 {
		return nil, ErrResources
	}

	// First connected connector in driver order wins. Connectors that
	// cannot be queried or advertise no modes are skipped.
	var conn *drm.Connector
	for _, id := range res.Connectors {
		c, err := dev.Connector(id)
		if err != nil || c.Connection != drm.Connected || len(c.Modes) == 0 {
			continue
		}
		conn = c
		break
	}
	if conn == nil {
		return nil, ErrNoDisplay
	}

	enc, err := dev.Encoder(conn.EncoderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoder, err)
	}

	crtc := enc.CrtcID
	if crtc == 0 {
		for i, id := range res.Crtcs {
			if enc.PossibleCrtcs&(1<<uint(i)) != 0 {
				crtc = id
				break
			}
		}
	}
	if crtc == 0 {
		return nil, ErrNoCrtc
	}

	o := &Output{
		dev:  dev,
		res:  res,
		conn: conn,
		enc:  enc,
		mode: conn.Modes[0],
		crtc: crtc,
	}
	if debug {
		log.Printf("dpalpha: using %s", o)
	}
	return o, nil
}

func (o *Output) String() string {
	return fmt.Sprintf("connector %d encoder %d crtc %d mode %s", o.conn.ID, o.enc.ID, o.crtc, o.mode)
}

// Mode returns the active display mode.
func (o *Output) Mode() drm.ModeInfo {
	return o.mode
}

// CreateSurface allocates a screen-sized pixel surface on the output's
// device. The surface must be closed before the output.
func (o *Output) CreateSurface() (*Surface, error) {
	return newSurface(o.dev, uint32(o.mode.Hdisplay), uint32(o.mode.Vdisplay))
}

// Bind makes the CRTC scan out the given framebuffer on the output's
// connector, replacing the current display configuration.
func (o *Output) Bind(fb uint32) error {
	if err := o.dev.SetCrtc(o.crtc, fb, 0, 0, []uint32{o.conn.ID}, &o.mode); err != nil {
		return fmt.Errorf("%w: %w", ErrSetCrtc, err)
	}
	return nil
}

// Close drops the encoder, connector and resource descriptors, in that
// order, and then closes the device. The first Close wins, repeated
// calls are no-ops.
func (o *Output) Close() error {
	if o.dev == nil {
		return nil
	}
	o.enc = nil
	o.conn = nil
	o.res = nil
	err := o.dev.Close()
	o.dev = nil
	return err
}
