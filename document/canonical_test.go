package document

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchdoc/sdk/annot"
	"github.com/sketchdoc/sdk/entity"
	"github.com/sketchdoc/sdk/geom"
	"github.com/sketchdoc/sdk/unit"
)

// fixtureEntities returns a segment, a circle, and a polyline with ids
// e1..e3.
func fixtureEntities(t *testing.T) (entity.Entity, entity.Entity, entity.Entity) {
	t.Helper()

	seg := entity.NewSegment("e1", "walls",
		geom.Point{X: 0, Y: 0}, geom.Point{X: 10.123456789, Y: 0},
		entity.NewStyle("#000000", 1.0, nil))

	circle, err := entity.NewCircle("e2", "walls", geom.Point{X: 5, Y: 5}, 2.5,
		entity.NewStyle("#ff0000", 0.5, []float64{4, 2}))
	require.NoError(t, err)

	poly, err := entity.NewPolyline("e3", "",
		[]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, true,
		entity.Style{})
	require.NoError(t, err)

	return seg, circle, poly
}

func fixtureDocument(t *testing.T, opts ...Option) *Document {
	t.Helper()

	seg, circle, poly := fixtureEntities(t)
	dim, err := annot.NewDimension("a2", "e1", 120.5, unit.Millimeters, geom.Point{X: 5, Y: -1})
	require.NoError(t, err)
	grp, err := annot.NewGroup("a3", "", "walls", []string{"e1", "e2"})
	require.NoError(t, err)

	base := []Option{
		WithLayers(
			Layer{ID: "walls", Name: "Walls", Visible: true},
			Layer{ID: "furniture", Name: "Furniture", Visible: false},
		),
		WithEntities(seg, circle, poly),
		WithAnnotations(
			annot.NewText("a1", "e1", geom.Point{X: 1, Y: 2}, "kitchen", 12, 0),
			dim,
			grp,
		),
		WithMetadata(map[string]string{"author": "field-app", "site": "B-14"}),
		WithUpdatedAt(1724572800000),
	}
	return New("doc-1", "Floor plan", Page{Width: 210, Height: 297, Units: unit.Millimeters}, append(base, opts...)...)
}

func TestCanonicalJSON_Deterministic(t *testing.T) {
	doc := fixtureDocument(t)

	first, err := doc.CanonicalJSON()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		again, err := doc.CanonicalJSON()
		require.NoError(t, err)
		require.Equal(t, string(first), string(again), "call %d differs", i)
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	doc := fixtureDocument(t)

	first, err := doc.ContentHash()
	require.NoError(t, err)
	assert.Len(t, first, 64)
	assert.Equal(t, strings.ToLower(first), first)

	for i := 0; i < 100; i++ {
		again, err := doc.ContentHash()
		require.NoError(t, err)
		require.Equal(t, first, again, "call %d differs", i)
	}
}

func TestContentHash_OrderIndependent(t *testing.T) {
	seg, circle, poly := fixtureEntities(t)
	txt := annot.NewText("a1", "e1", geom.Point{X: 1, Y: 2}, "kitchen", 12, 0)
	tag := annot.NewTag("a2", "e2", "load-bearing", "")

	layerA := Layer{ID: "la", Name: "A", Visible: true}
	layerB := Layer{ID: "lb", Name: "B", Visible: false}

	forward := New("doc-1", "Plan", Page{Width: 100, Height: 100, Units: unit.Meters},
		WithLayers(layerA, layerB),
		WithEntities(seg, circle, poly),
		WithAnnotations(txt, tag),
		WithMetadata(map[string]string{"a": "1", "b": "2"}),
		WithUpdatedAt(42),
	)
	reversed := New("doc-1", "Plan", Page{Width: 100, Height: 100, Units: unit.Meters},
		WithLayers(layerB, layerA),
		WithEntities(poly, circle, seg),
		WithAnnotations(tag, txt),
		WithMetadata(map[string]string{"b": "2", "a": "1"}),
		WithUpdatedAt(42),
	)

	hashForward, err := forward.ContentHash()
	require.NoError(t, err)
	hashReversed, err := reversed.ContentHash()
	require.NoError(t, err)

	assert.Equal(t, hashForward, hashReversed)
	assert.True(t, forward.Equal(reversed))
}

func TestCanonicalJSON_EmptyDocument(t *testing.T) {
	doc := New("doc-1", "Empty", Page{Width: 210, Height: 297, Units: unit.Millimeters},
		WithUpdatedAt(0))

	data, err := doc.CanonicalJSON()
	require.NoError(t, err)

	want := `{
  "schema_version": 1,
  "id": "doc-1",
  "name": "Empty",
  "page": {
    "width": 210,
    "height": 297,
    "units": "mm"
  },
  "layers": [],
  "entities": [],
  "annotations": [],
  "metadata": {},
  "sync_id": null,
  "sync_status": "local",
  "updated_at": 0,
  "version": 1
}`
	assert.Equal(t, want, string(data))
}

func TestCanonicalJSON_RoundsCoordinates(t *testing.T) {
	seg := entity.NewSegment("e1", "",
		geom.Point{X: 1.123456789, Y: -2.98765432}, geom.Point{X: 0, Y: 0},
		entity.NewStyle("#000000", 1.00004999, []float64{4.56789, 2}))
	doc := New("doc-1", "Rounded", Page{Width: 210.12347, Height: 297, Units: unit.Millimeters},
		WithEntities(seg),
		WithUpdatedAt(0))

	data, err := doc.CanonicalJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"x": 1.1235`)
	assert.Contains(t, s, `"y": -2.9877`)
	assert.Contains(t, s, `"width": 210.1235`)
	assert.Contains(t, s, `"width": 1`)
	assert.Contains(t, s, `4.5679`)
	assert.NotContains(t, s, "1.123456789")
}

func TestCanonicalJSON_ExplicitNulls(t *testing.T) {
	seg := entity.NewSegment("e1", "", geom.Point{}, geom.Point{X: 1, Y: 1},
		entity.NewStyle("#000000", 1, nil))
	tag := annot.NewTag("a1", "e1", "label", "")

	doc := New("doc-1", "Nulls", Page{Width: 10, Height: 10, Units: unit.Inches},
		WithEntities(seg),
		WithAnnotations(tag),
		WithUpdatedAt(0))

	data, err := doc.CanonicalJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"layer": null`)
	assert.Contains(t, s, `"dash_pattern": null`)
	assert.Contains(t, s, `"category": null`)
	assert.Contains(t, s, `"sync_id": null`)
}

func TestCanonicalJSON_UnixLineBreaksOnly(t *testing.T) {
	data, err := fixtureDocument(t).CanonicalJSON()
	require.NoError(t, err)

	assert.NotContains(t, string(data), "\r")
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"schema_version\":"))
}

func TestCanonicalJSON_SortsCollections(t *testing.T) {
	data, err := fixtureDocument(t).CanonicalJSON()
	require.NoError(t, err)

	s := string(data)
	// Layer ids sort "furniture" before "walls" even though "walls" was
	// inserted first; metadata keys sort "author" before "site".
	assert.Less(t, strings.Index(s, `"furniture"`), strings.Index(s, `"walls"`))
	assert.Less(t, strings.Index(s, `"author"`), strings.Index(s, `"site"`))
	assert.Less(t, strings.Index(s, `"id": "e1"`), strings.Index(s, `"id": "e2"`))
	assert.Less(t, strings.Index(s, `"id": "e2"`), strings.Index(s, `"id": "e3"`))
	assert.Less(t, strings.Index(s, `"id": "a1"`), strings.Index(s, `"id": "a2"`))
}

func TestCanonicalJSON_NonFiniteFails(t *testing.T) {
	seg := entity.NewSegment("e1", "", geom.Point{X: math.NaN(), Y: 0}, geom.Point{X: 1, Y: 1}, entity.Style{})
	doc := New("doc-1", "Bad", Page{Width: 10, Height: 10, Units: unit.Millimeters},
		WithEntities(seg),
		WithUpdatedAt(0))

	_, err := doc.CanonicalJSON()
	assert.Error(t, err)

	_, err = doc.ContentHash()
	assert.Error(t, err)
}

func TestCanonicalJSON_RoundTripIdempotent(t *testing.T) {
	doc := fixtureDocument(t)

	first, err := doc.CanonicalJSON()
	require.NoError(t, err)

	parsed, err := Parse(first)
	require.NoError(t, err)

	second, err := parsed.CanonicalJSON()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestContentHash_DiffersOnContentChange(t *testing.T) {
	a := fixtureDocument(t)
	b := fixtureDocument(t, WithVersion(2))

	hashA, err := a.ContentHash()
	require.NoError(t, err)
	hashB, err := b.ContentHash()
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)
	assert.False(t, a.Equal(b))
}
