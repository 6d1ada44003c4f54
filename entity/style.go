package entity

// Style describes how an entity is stroked. The zero value is a solid,
// zero-width stroke with no color set.
//
// Style is immutable after construction. The dash pattern is copied both
// in and out, so no caller ever holds a slice aliasing the stored one.
type Style struct {
	color string
	width float64
	dash  []float64
}

// NewStyle creates a stroke style. The color string is carried verbatim
// (hex-like by convention, not validated here). A nil dash means a solid
// stroke; a non-nil dash is copied.
func NewStyle(color string, width float64, dash []float64) Style {
	s := Style{color: color, width: width}
	if dash != nil {
		s.dash = make([]float64, len(dash))
		copy(s.dash, dash)
	}
	return s
}

// Color returns the stroke color string.
func (s Style) Color() string { return s.color }

// Width returns the stroke width.
func (s Style) Width() float64 { return s.width }

// Dash returns a copy of the dash pattern, or nil for a solid stroke.
func (s Style) Dash() []float64 {
	if s.dash == nil {
		return nil
	}
	out := make([]float64, len(s.dash))
	copy(out, s.dash)
	return out
}
