package relation

import (
	"fmt"
	"reflect"
	"strings"

	"relation-factory/internal/common"
)

// Importer is implemented by entity types that track whether an instance was
// created by an import rather than by a user.
type Importer interface {
	SetImporting(importing bool)
	Importing() bool
}

// Constructor returns a new zero entity as a pointer to a struct.
type Constructor func() any

// Descriptor describes one destination entity type.
type Descriptor struct {
	id         string
	construct  Constructor
	attributes map[string]struct{}
	importing  bool
	authored   bool
}

// Option configures a Descriptor at registration.
type Option func(*Descriptor)

// Authored marks a type as note-like: imports preserve the original author's
// name in the body when the author cannot be mapped.
func Authored() Option {
	return func(d *Descriptor) {
		d.authored = true
	}
}

func newDescriptor(id string, construct Constructor, opts ...Option) (*Descriptor, error) {
	if id == "" {
		return nil, fmt.Errorf("type id must not be empty")
	}

	if construct == nil {
		return nil, fmt.Errorf("type %q: constructor must not be nil", id)
	}

	sample := construct()

	rt := reflect.TypeOf(sample)
	if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("type %q: constructor must return a pointer to a struct, got %T", id, sample)
	}

	_, importing := sample.(Importer)

	d := &Descriptor{
		id:         id,
		construct:  construct,
		attributes: common.Set(declaredAttributes(rt.Elem())),
		importing:  importing,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// ID returns the type identifier, e.g. "MergeRequest" or "ci.Commit".
func (d *Descriptor) ID() string {
	return d.id
}

// New returns a new zero entity of this type.
func (d *Descriptor) New() any {
	return d.construct()
}

// HasAttribute reports whether the type declares the named attribute.
func (d *Descriptor) HasAttribute(name string) bool {
	_, ok := d.attributes[name]
	return ok
}

// Attributes returns the declared attribute names in ascending order.
func (d *Descriptor) Attributes() []string {
	return common.SortedKeys(d.attributes)
}

// SupportsImporting reports whether entities of this type implement Importer.
func (d *Descriptor) SupportsImporting() bool {
	return d.importing
}

// Authored reports whether the type is note-like.
func (d *Descriptor) Authored() bool {
	return d.authored
}

// declaredAttributes lists the attribute names a struct accepts, taken from
// json tags. Untagged exported fields use the Go field name; "-" is skipped.
// Embedded structs without a name in their tag contribute their own fields.
func declaredAttributes(rt reflect.Type) []string {
	var names []string

	for i := range rt.NumField() {
		f := rt.Field(i)

		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			names = append(names, declaredAttributes(f.Type)...)
			continue
		}

		if !f.IsExported() {
			continue
		}

		if name == "" {
			name = f.Name
		}

		names = append(names, name)
	}

	return names
}
