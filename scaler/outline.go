package scaler

import "golang.org/x/image/font/sfnt"

// SegmentOp is one outline path operator.
type SegmentOp uint8

const (
	SegmentOpMoveTo SegmentOp = iota
	SegmentOpLineTo
	SegmentOpQuadTo
	SegmentOpCubeTo
)

// Point is one outline control point in pixels. Coordinates follow the
// rasterizer's convention: x grows to the right, y grows downward from the
// glyph's rendering origin.
type Point struct {
	X, Y float32
}

// Command is one outline path command. MoveTo and LineTo use Args[0],
// QuadTo uses Args[0..1], CubeTo all three.
type Command struct {
	Op   SegmentOp
	Args [3]Point
}

// ScaleOutline extracts the scaled vector outline of a glyph as a command
// sequence, or nil if the glyph has none.
func (sc *Scaler) ScaleOutline(glyphID uint16) []Command {
	segs := sc.loadGlyph(glyphID)
	if segs == nil {
		return nil
	}
	cmds := make([]Command, 0, len(segs))
	for _, seg := range segs {
		cmd := Command{Op: opFor(seg.Op)}
		for i := range 3 {
			cmd.Args[i] = Point{
				X: float32(seg.Args[i].X) / 64,
				Y: float32(seg.Args[i].Y) / 64,
			}
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// ScaleColorOutline extracts a layered color outline. The sfnt loader
// exposes no COLR table, so this is never available; it exists to complete
// the fallback chain standard-outline-first consumers rely on.
func (sc *Scaler) ScaleColorOutline(glyphID uint16) []Command {
	return nil
}

func opFor(op sfnt.SegmentOp) SegmentOp {
	switch op {
	case sfnt.SegmentOpLineTo:
		return SegmentOpLineTo
	case sfnt.SegmentOpQuadTo:
		return SegmentOpQuadTo
	case sfnt.SegmentOpCubeTo:
		return SegmentOpCubeTo
	}
	return SegmentOpMoveTo
}
