package domain

import (
	"fmt"
	"strings"
)

// Kitty graphics protocol constants. The framing parameters are
// protocol-defined values supplied by the caller, never computed.
const (
	// ActionTransmit transmits and displays image data (a=T).
	ActionTransmit = "T"
	// FormatPNG identifies PNG payload data (f=100).
	FormatPNG = "100"
	// PlacementDirect requests direct placement at the cursor (t=d).
	PlacementDirect = "d"
)

// GraphicsFrame holds the escape-sequence framing parameters for one
// image transmission. Zero values fall back to transmit+PNG.
type GraphicsFrame struct {
	Action    string // a= key; defaults to ActionTransmit
	Format    string // f= key; defaults to FormatPNG
	Placement string // t= key; empty omits the key
	Width     int    // s= key, source width in pixels; 0 omits the key
	Height    int    // v= key, source height in pixels; 0 omits the key
}

// Header renders the key=value control section of the escape sequence,
// e.g. "a=T,f=100" or "a=T,t=d,f=100,s=400,v=500".
func (f GraphicsFrame) Header() string {
	action := f.Action
	if action == "" {
		action = ActionTransmit
	}
	format := f.Format
	if format == "" {
		format = FormatPNG
	}

	parts := []string{"a=" + action}
	if f.Placement != "" {
		parts = append(parts, "t="+f.Placement)
	}
	parts = append(parts, "f="+format)
	if f.Width > 0 {
		parts = append(parts, fmt.Sprintf("s=%d", f.Width))
	}
	if f.Height > 0 {
		parts = append(parts, fmt.Sprintf("v=%d", f.Height))
	}
	return strings.Join(parts, ",")
}
