package factory

import (
	"io"
	"log/slog"

	"relation-factory/internal/authorship"
	"relation-factory/internal/materialize"
	"relation-factory/internal/members"
	"relation-factory/internal/model"
	"relation-factory/internal/record"
	"relation-factory/internal/relation"
	"relation-factory/internal/rewrite"
)

// Factory builds entities from relation records.
type Factory struct {
	registry *relation.Registry
	logger   *slog.Logger
	strict   bool
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithStrict rejects records carrying attributes their type does not declare.
func WithStrict(strict bool) Option {
	return func(f *Factory) {
		f.strict = strict
	}
}

// New creates a Factory over registry. A nil registry uses model.NewRegistry.
func New(registry *relation.Registry, opts ...Option) *Factory {
	if registry == nil {
		registry = model.NewRegistry()
	}

	f := &Factory{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Registry returns the registry the factory resolves against.
func (f *Factory) Registry() *relation.Registry {
	return f.registry
}

// Result is the outcome of building one relation.
type Result struct {
	Relation string
	Type     *relation.Descriptor
	Entity   any
	// Missing lists user references that had no destination account and
	// were set to null.
	Missing []rewrite.MissingReference
}

// Create builds the entity for one relation record. rec is mutated.
func (f *Factory) Create(relationName string, rec record.Record, mapper members.Mapper, projectID int64) (any, error) {
	res, err := f.Build(relationName, rec, mapper, projectID)
	if err != nil {
		return nil, err
	}

	return res.Entity, nil
}

// Build is Create with the resolved type and missing references reported.
func (f *Factory) Build(relationName string, rec record.Record, mapper members.Mapper, projectID int64) (*Result, error) {
	typ, err := f.registry.Resolve(relationName)
	if err != nil {
		return nil, err
	}

	res := &Result{Relation: relationName, Type: typ}

	if typ.Authored() {
		res.Missing = append(res.Missing, authorship.Preserve(rec, mapper)...)
	}

	// The user pass also runs over the author_id the authorship step already
	// mapped, so a note author is looked up twice.
	res.Missing = append(res.Missing, rewrite.Users(rec, mapper)...)
	rewrite.Projects(rec, typ, projectID)
	delete(rec, "id")

	for _, m := range res.Missing {
		f.logger.Debug("user reference has no destination account",
			slog.String("relation", relationName),
			slog.String("attribute", m.Attribute),
			slog.Any("old_id", m.OldID))
	}

	res.Entity, err = materialize.Entity(typ, rec, materialize.Options{Strict: f.strict})
	if err != nil {
		return nil, err
	}

	f.logger.Debug("relation built", slog.String("relation", relationName), slog.String("type", typ.ID()))

	return res, nil
}

var defaultFactory = New(nil)

// Create builds an entity with the default registry. rec is mutated.
func Create(relationName string, rec record.Record, mapper members.Mapper, projectID int64) (any, error) {
	return defaultFactory.Create(relationName, rec, mapper, projectID)
}
