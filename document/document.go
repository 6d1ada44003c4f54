package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/sketchdoc/sdk/annot"
	"github.com/sketchdoc/sdk/entity"
	"github.com/sketchdoc/sdk/unit"
)

// CurrentSchemaVersion is the single schema version this build reads and
// writes. The validator rejects any other value.
const CurrentSchemaVersion = 1

// Page is the drawing surface definition.
type Page struct {
	// Width is the page width in Units.
	Width float64

	// Height is the page height in Units.
	Height float64

	// Units is the measurement unit for Width and Height.
	Units unit.Unit
}

// Layer is a named drawing layer entities can reference by id.
type Layer struct {
	// ID is the layer's stable identifier.
	ID string

	// Name is the display name.
	Name string

	// Visible reports whether the layer is shown by rendering
	// collaborators. Carried verbatim; it does not affect
	// canonicalization or validation.
	Visible bool
}

// Document is the aggregate root of the drawing format. All fields are
// fixed at construction; a Document is safe to share across goroutines
// because nothing ever mutates it.
type Document struct {
	schemaVersion int
	id            string
	name          string
	page          Page
	layers        []Layer
	entities      []entity.Entity
	annotations   []annot.Annotation
	metadata      map[string]string
	syncID        string
	syncStatus    SyncStatus
	updatedAt     int64
	version       int
}

// Option configures a Document during construction.
type Option func(*Document)

// WithLayers sets the document's layers.
func WithLayers(layers ...Layer) Option {
	return func(d *Document) {
		d.layers = make([]Layer, len(layers))
		copy(d.layers, layers)
	}
}

// WithEntities sets the document's entities.
func WithEntities(entities ...entity.Entity) Option {
	return func(d *Document) {
		d.entities = make([]entity.Entity, len(entities))
		copy(d.entities, entities)
	}
}

// WithAnnotations sets the document's annotations.
func WithAnnotations(annotations ...annot.Annotation) Option {
	return func(d *Document) {
		d.annotations = make([]annot.Annotation, len(annotations))
		copy(d.annotations, annotations)
	}
}

// WithMetadata sets the document's free-form string metadata. The map is
// copied; insertion order never matters because canonical output sorts
// keys.
func WithMetadata(metadata map[string]string) Option {
	return func(d *Document) {
		d.metadata = make(map[string]string, len(metadata))
		for k, v := range metadata {
			d.metadata[k] = v
		}
	}
}

// WithSyncID sets the sync collaborator's identifier for this document.
func WithSyncID(id string) Option {
	return func(d *Document) {
		d.syncID = id
	}
}

// WithSyncStatus sets the synchronization state.
func WithSyncStatus(s SyncStatus) Option {
	return func(d *Document) {
		d.syncStatus = s
	}
}

// WithUpdatedAt sets the last-modified timestamp in epoch milliseconds.
func WithUpdatedAt(millis int64) Option {
	return func(d *Document) {
		d.updatedAt = millis
	}
}

// WithVersion sets the document's edit version counter.
func WithVersion(v int) Option {
	return func(d *Document) {
		d.version = v
	}
}

// WithSchemaVersion overrides the schema version. Useful for exercising
// version rejection; documents written by this build should keep the
// default.
func WithSchemaVersion(v int) Option {
	return func(d *Document) {
		d.schemaVersion = v
	}
}

// New creates a document with the given identity and page. A blank id is
// replaced with a generated one. Defaults: current schema version, no
// layers/entities/annotations, empty metadata, sync status "local",
// updated-at now, version 1.
func New(id, name string, page Page, opts ...Option) *Document {
	if id == "" {
		id = NewID()
	}
	d := &Document{
		schemaVersion: CurrentSchemaVersion,
		id:            id,
		name:          name,
		page:          page,
		syncStatus:    SyncLocal,
		updatedAt:     time.Now().UnixMilli(),
		version:       1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewID returns a fresh document identifier.
func NewID() string {
	return uuid.NewString()
}

// SchemaVersion returns the document's schema version.
func (d *Document) SchemaVersion() int { return d.schemaVersion }

// ID returns the document's identifier.
func (d *Document) ID() string { return d.id }

// Name returns the document's display name.
func (d *Document) Name() string { return d.name }

// Page returns the page definition.
func (d *Document) Page() Page { return d.page }

// Layers returns a copy of the layer list.
func (d *Document) Layers() []Layer {
	out := make([]Layer, len(d.layers))
	copy(out, d.layers)
	return out
}

// Entities returns a copy of the entity list. Elements are immutable, so
// sharing them is safe.
func (d *Document) Entities() []entity.Entity {
	out := make([]entity.Entity, len(d.entities))
	copy(out, d.entities)
	return out
}

// Annotations returns a copy of the annotation list.
func (d *Document) Annotations() []annot.Annotation {
	out := make([]annot.Annotation, len(d.annotations))
	copy(out, d.annotations)
	return out
}

// Metadata returns a copy of the metadata mapping.
func (d *Document) Metadata() map[string]string {
	out := make(map[string]string, len(d.metadata))
	for k, v := range d.metadata {
		out[k] = v
	}
	return out
}

// SyncID returns the sync collaborator's identifier, or "" when the
// document has never been synced.
func (d *Document) SyncID() string { return d.syncID }

// SyncStatus returns the synchronization state.
func (d *Document) SyncStatus() SyncStatus { return d.syncStatus }

// UpdatedAt returns the last-modified timestamp in epoch milliseconds.
func (d *Document) UpdatedAt() int64 { return d.updatedAt }

// Version returns the edit version counter a sync collaborator compares
// against the remote copy.
func (d *Document) Version() int { return d.version }

// Equal reports whether d and other have identical canonical JSON, which
// is the format's definition of semantic equality. Documents whose
// canonical form cannot be produced (non-finite values) are never equal.
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	a, err := d.CanonicalJSON()
	if err != nil {
		return false
	}
	b, err := other.CanonicalJSON()
	if err != nil {
		return false
	}
	return string(a) == string(b)
}
