package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"relation-factory/internal/diagnostic"
	"relation-factory/internal/export"
	"relation-factory/internal/factory"
	"relation-factory/internal/members"
	"relation-factory/internal/relation"
)

// Options contains import configuration.
type Options struct {
	ProjectID   int64 // Destination project id stamped on project-linked relations
	SkipUnknown bool  // Skip relations of unknown type instead of aborting
}

// Emit receives each built entity in stream order.
type Emit func(entry *export.Entry, res *factory.Result) error

// Summary contains statistics about an import run.
type Summary struct {
	Read        int // Entries read from the stream
	Built       int // Entities built
	Skipped     int // Entries skipped for unknown relation types
	Degraded    int // User references set to null
	Diagnostics diagnostic.Diagnostics
}

// Importer builds entities for a stream of relation records.
type Importer struct {
	factory *factory.Factory
	members members.Mapper
	opts    Options
	logger  *slog.Logger
}

// New creates an Importer.
func New(f *factory.Factory, mapper members.Mapper, opts Options, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Importer{
		factory: f,
		members: mapper,
		opts:    opts,
		logger:  logger,
	}
}

// Run reads every entry from r and builds it. It stops at the first fatal
// error, which is also recorded in the returned summary.
func (im *Importer) Run(ctx context.Context, r *export.Reader, emit Emit) (*Summary, error) {
	summary := &Summary{}

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		entry, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			summary.Diagnostics.AddError(diagnostic.CodeDecodeFailed, err.Error(), diagnostic.Location{Line: summary.Read + 1})
			return summary, err
		}

		summary.Read++

		if err := im.buildEntry(entry, summary, emit); err != nil {
			return summary, err
		}
	}

	im.logger.Info("import finished",
		slog.Int("read", summary.Read),
		slog.Int("built", summary.Built),
		slog.Int("skipped", summary.Skipped),
		slog.Int("degraded", summary.Degraded))

	return summary, nil
}

func (im *Importer) buildEntry(entry *export.Entry, summary *Summary, emit Emit) error {
	loc := diagnostic.Location{Relation: entry.Relation, Line: entry.Line}

	res, err := im.factory.Build(entry.Relation, entry.Attributes, im.members, im.opts.ProjectID)

	switch {
	case errors.Is(err, relation.ErrUnknownRelationType) && im.opts.SkipUnknown:
		summary.Skipped++
		summary.Diagnostics.AddWarning(diagnostic.CodeUnknownRelation, err.Error(), loc)
		im.logger.Warn("skipping relation", slog.String("relation", entry.Relation), slog.Int("line", entry.Line))

		return nil
	case errors.Is(err, relation.ErrUnknownRelationType):
		summary.Diagnostics.AddError(diagnostic.CodeUnknownRelation, err.Error(), loc)
		return fmt.Errorf("line %d: %w", entry.Line, err)
	case err != nil:
		summary.Diagnostics.AddError(diagnostic.CodeConstructFailed, err.Error(), loc)
		return fmt.Errorf("line %d: %s: %w", entry.Line, entry.Relation, err)
	}

	for _, m := range res.Missing {
		summary.Degraded++
		summary.Diagnostics.AddWarning(diagnostic.CodeMissingMapping,
			fmt.Sprintf("user %v has no destination account; reference set to null", m.OldID),
			diagnostic.Location{Relation: entry.Relation, Line: entry.Line, Attribute: m.Attribute})
	}

	summary.Built++

	if emit == nil {
		return nil
	}

	return emit(entry, res)
}
