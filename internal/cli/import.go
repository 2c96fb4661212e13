package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"relation-factory/internal/config"
	"relation-factory/internal/export"
	"relation-factory/internal/factory"
	"relation-factory/internal/importer"
	"relation-factory/internal/members"
	"relation-factory/internal/model"
)

// NewImportCommand creates the import command.
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Build destination entities from an export stream",
		Long: `Read relation records (one JSON object per line) and write one built entity
per line. User ids are remapped through the members file; ids with no
destination account become null and are reported as warnings.`,
		Example: `  # Import into project 42, skipping relations of unknown type
  relation-factory import --project-id 42 --members members.yaml \
    --input export.ndjson --on-unknown skip`,
		RunE: runImport,
	}

	cmd.Flags().Int64("project-id", 0, "destination project id")
	cmd.Flags().String("members", "", "members map file (YAML)")
	cmd.Flags().String("input", "", "export stream (default: stdin)")
	cmd.Flags().String("output", "", "output file (default: stdout)")
	cmd.Flags().String("on-unknown", "", "what to do with unknown relation types (abort|skip)")
	cmd.Flags().Bool("strict", false, "reject attributes the destination type does not declare")

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) (err error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cfg.FileUsed != "" {
		logger.Debug("using config file", slog.String("path", cfg.FileUsed))
	}

	mapper, err := loadMembers(cfg.MembersFile, logger)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, cfg.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, cfg.Output)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := closeOut(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close output %s: %w", cfg.Output, cerr))
		}
	}()

	f := factory.New(model.NewRegistry(), factory.WithLogger(logger), factory.WithStrict(cfg.Strict))
	im := importer.New(f, mapper, importer.Options{
		ProjectID:   cfg.ProjectID,
		SkipUnknown: cfg.Policy() == config.PolicySkip,
	}, logger)

	w := export.NewWriter(out)

	summary, runErr := im.Run(cmd.Context(), export.NewReader(in), func(e *export.Entry, res *factory.Result) error {
		return w.Write(export.Built{
			Line:     e.Line,
			Relation: e.Relation,
			Type:     res.Type.ID(),
			Entity:   res.Entity,
		})
	})

	for _, d := range summary.Diagnostics.All() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d)
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "read %d, built %d, skipped %d, degraded references %d\n",
		summary.Read, summary.Built, summary.Skipped, summary.Degraded)

	return runErr
}

func loadMembers(path string, logger *slog.Logger) (*members.Map, error) {
	if path == "" {
		logger.Warn("no members file; every user reference will be set to null")
		return members.NewMap(nil, nil), nil
	}

	m, err := members.LoadFile(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("members loaded", slog.Int("users", m.Len()), slog.Int("note_authors", len(m.NoteAuthors())))

	return m, nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}

	return f, func() { _ = f.Close() }, nil
}

// createOutput opens an output file for writing.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := createOutput(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output %s: %w", path, err)
	}

	return f, f.Close, nil
}
