package scene

import (
	"github.com/matzehuels/stepdoc/pkg/fonts"
	"github.com/matzehuels/stepdoc/pkg/pdf"
)

// Flags select what a draw call renders. They combine with the renderer's
// persistent display flags.
type Flags uint

const (
	NewPage        Flags = 1 << iota // start a new page first
	NoNodes                          // skip node circles and labels
	NoNodeLabels                     // draw circles without labels
	ShowNodeValues                   // label nodes with their value
	ShowNodeNames                    // label nodes with their name
	NoArcs                           // skip arcs
	ArcWeights                       // label arcs with their weight
	ThickArcs                        // heavy arcs with larger heads
	NoArcArrows                      // no arrowheads
)

// Drawing constants in points.
const (
	ArrowheadLength   = 9.0
	ArrowheadWidth    = 6.0
	ArcLineWidth      = 0.5
	ThickArcLineWidth = 5.0
	NodeLineWidth     = 0.5
	NodeRadius        = 12.0

	NodeFontScale = 12.0
	ArcFontScale  = 10.0

	// weightOffset separates a weight label from its arc.
	weightOffset = 3.0
	// haloRatio sizes the highlight halo relative to the node.
	haloRatio = 1.618
	// thickHeadRatio lengthens arrowheads on thick arcs.
	thickHeadRatio = 1.414
)

// Fonts used for labels.
var (
	NodeFont = fonts.HelveticaBold
	ArcFont  = fonts.Helvetica
)

// Colors.
var (
	NodeColor    = pdf.Black
	ArcColor     = pdf.Black
	BeneathColor = pdf.RGB(0.5, 0.5, 1)
	HaloColor    = pdf.RGB(1, 1, 0.5)
)

// Style holds the parameters of one draw call.
type Style struct {
	NodeColor     pdf.Color
	ArcColor      pdf.Color
	NodeRadius    float64
	NodeLineWidth float64
	ArcLineWidth  float64
	ArrowLength   float64
	ArrowWidth    float64
}

// DefaultStyle is the style used by Draw.
func DefaultStyle() Style {
	return Style{
		NodeColor:     NodeColor,
		ArcColor:      ArcColor,
		NodeRadius:    NodeRadius,
		NodeLineWidth: NodeLineWidth,
		ArcLineWidth:  ArcLineWidth,
		ArrowLength:   ArrowheadLength,
		ArrowWidth:    ArrowheadWidth,
	}
}
