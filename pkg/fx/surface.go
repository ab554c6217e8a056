package fx

// Surface is a 2D drawing target. The browser client backs it with a canvas
// 2D context; previewers back it with a terminal cell grid or an ebiten image.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x1, y1, x2, y2, width float64, c Color)
}

// Glower is implemented by surfaces that can draw a soft shadow around fills.
// A blur of zero turns the glow off.
type Glower interface {
	SetGlow(blur float64, c Color)
}

// OpKind identifies a recorded draw operation
type OpKind uint8

const (
	OpClear OpKind = iota
	OpCircle
	OpLine
	OpGlow
)

// Op is one recorded draw call
type Op struct {
	Kind  OpKind
	X, Y  float64
	X2    float64
	Y2    float64
	Size  float64 // radius, line width or blur
	Color Color
}

// Recorder is a Surface that keeps every draw call in memory.
type Recorder struct {
	Ops []Op
}

// Clear implements Surface; it also drops previously recorded ops.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

// FillCircle implements Surface
func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, Size: radius, Color: c})
}

// StrokeLine implements Surface
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Size: width, Color: c})
}

// SetGlow implements Glower
func (r *Recorder) SetGlow(blur float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGlow, Size: blur, Color: c})
}

// Count returns how many ops of kind were recorded since the last Clear.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
