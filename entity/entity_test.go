package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchdoc/sdk/geom"
)

// Compile-time checks that every variant satisfies the sealed interface.
var (
	_ Entity = (*Segment)(nil)
	_ Entity = (*Circle)(nil)
	_ Entity = (*Polyline)(nil)
	_ Entity = (*Arc)(nil)
)

func TestNewSegment(t *testing.T) {
	style := NewStyle("#ff0000", 2.0, []float64{4, 2})
	seg := NewSegment("e1", "walls", geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}, style)

	assert.Equal(t, "e1", seg.ID())
	assert.Equal(t, "walls", seg.Layer())
	assert.Equal(t, KindLine, seg.Kind())
	assert.Equal(t, geom.Point{X: 0, Y: 0}, seg.Start())
	assert.Equal(t, geom.Point{X: 3, Y: 4}, seg.End())
	assert.Equal(t, 5.0, seg.Length())
	assert.Equal(t, "#ff0000", seg.Style().Color())
}

func TestNewSegment_ZeroLengthConstructible(t *testing.T) {
	p := geom.Point{X: 1, Y: 1}
	seg := NewSegment("e1", "", p, p, Style{})
	require.NotNil(t, seg)
	assert.Equal(t, 0.0, seg.Length())
}

func TestNewCircle(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
		errMsg  string
	}{
		{name: "positive radius", radius: 2.5},
		{name: "tiny radius", radius: 1e-9},
		{name: "negative radius", radius: -5.0, wantErr: true, errMsg: "positive and finite"},
		{name: "zero radius", radius: 0.0, wantErr: true, errMsg: "positive and finite"},
		{name: "infinite radius", radius: math.Inf(1), wantErr: true, errMsg: "positive and finite"},
		{name: "nan radius", radius: math.NaN(), wantErr: true, errMsg: "positive and finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircle("e1", "", geom.Point{X: 5, Y: 5}, tt.radius, Style{})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.radius, c.Radius())
				assert.Equal(t, KindCircle, c.Kind())
			}
		})
	}
}

func TestNewPolyline(t *testing.T) {
	pts := func(n int) []geom.Point {
		out := make([]geom.Point, n)
		for i := range out {
			out[i] = geom.Point{X: float64(i), Y: float64(i)}
		}
		return out
	}

	tests := []struct {
		name    string
		points  []geom.Point
		wantErr bool
		errMsg  string
	}{
		{name: "two points", points: pts(2)},
		{name: "many points", points: pts(10)},
		{name: "empty", points: nil, wantErr: true, errMsg: "at least 2 points"},
		{name: "single point", points: pts(1), wantErr: true, errMsg: "at least 2 points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolyline("e1", "", tt.points, false, Style{})
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.points), p.PointCount())
				assert.Equal(t, KindPolyline, p.Kind())
				assert.False(t, p.Closed())
			}
		})
	}
}

func TestNewPolyline_CopiesPoints(t *testing.T) {
	original := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	p, err := NewPolyline("e1", "", original, true, Style{})
	require.NoError(t, err)

	// Clearing the caller's slice must not touch the stored chain.
	clear(original)

	assert.Equal(t, 3, p.PointCount())
	assert.Equal(t, geom.Point{X: 0, Y: 0}, p.Points()[0])
	assert.True(t, p.Closed())
}

func TestPolyline_PointsReturnsCopy(t *testing.T) {
	p, err := NewPolyline("e1", "", []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, false, Style{})
	require.NoError(t, err)

	got := p.Points()
	got[0] = geom.Point{X: 42, Y: 42}

	assert.Equal(t, geom.Point{X: 0, Y: 0}, p.Points()[0])
}

func TestNewArc(t *testing.T) {
	tests := []struct {
		name       string
		radius     float64
		startAngle float64
		endAngle   float64
		wantErr    bool
		errMsg     string
	}{
		{name: "quarter arc", radius: 1.0, startAngle: 0, endAngle: 90},
		{name: "full circle as arc", radius: 2.0, startAngle: 45, endAngle: 45},
		{name: "negative angles", radius: 1.0, startAngle: -90, endAngle: -45},
		{name: "zero radius", radius: 0, wantErr: true, errMsg: "positive and finite"},
		{name: "nan radius", radius: math.NaN(), wantErr: true, errMsg: "positive and finite"},
		{name: "infinite start angle", radius: 1.0, startAngle: math.Inf(1), endAngle: 90, wantErr: true, errMsg: "start angle must be finite"},
		{name: "nan end angle", radius: 1.0, startAngle: 0, endAngle: math.NaN(), wantErr: true, errMsg: "end angle must be finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArc("e1", "", geom.Point{X: 0, Y: 0}, tt.radius, tt.startAngle, tt.endAngle)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.radius, a.Radius())
				assert.Equal(t, tt.startAngle, a.StartAngle())
				assert.Equal(t, tt.endAngle, a.EndAngle())
				assert.Equal(t, KindArc, a.Kind())
			}
		})
	}
}

func TestNewStyle_CopiesDash(t *testing.T) {
	dash := []float64{4, 2}
	s := NewStyle("#000000", 1.0, dash)

	dash[0] = 99
	got := s.Dash()
	require.Len(t, got, 2)
	assert.Equal(t, 4.0, got[0])

	// The getter hands out a copy too.
	got[1] = 99
	assert.Equal(t, 2.0, s.Dash()[1])
}

func TestNewStyle_NilDashMeansSolid(t *testing.T) {
	s := NewStyle("#000000", 1.0, nil)
	assert.Nil(t, s.Dash())
}
