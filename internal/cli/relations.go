package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"relation-factory/internal/model"
	"relation-factory/internal/relation"
)

// relationInfo describes one registered type for listing.
type relationInfo struct {
	Relation   string   `yaml:"relation"`
	Type       string   `yaml:"type"`
	Override   bool     `yaml:"override"`
	Importing  bool     `yaml:"importing"`
	Authored   bool     `yaml:"authored"`
	Attributes []string `yaml:"attributes"`
}

// NewRelationsCommand creates the relations command.
func NewRelationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "List the relation names this build can import",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return renderRelations(cmd.OutOrStdout(), describeRelations(model.NewRegistry()), format)
		},
	}

	cmd.Flags().String("format", "table", "output format (table|yaml)")

	return cmd
}

func describeRelations(r *relation.Registry) []relationInfo {
	overrides := relation.Overrides()

	infos := make([]relationInfo, 0, len(r.IDs()))
	for _, id := range r.IDs() {
		d := r.Get(id)
		name := relation.RelationName(id)
		_, override := overrides[name]

		infos = append(infos, relationInfo{
			Relation:   name,
			Type:       id,
			Override:   override,
			Importing:  d.SupportsImporting(),
			Authored:   d.Authored(),
			Attributes: d.Attributes(),
		})
	}

	return infos
}

func renderRelations(w io.Writer, infos []relationInfo, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(infos); err != nil {
			return fmt.Errorf("failed to encode relations: %w", err)
		}

		return enc.Close()
	case "table", "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Relation", "Type", "Override", "Importing", "Authored", "Attributes"})

		for _, info := range infos {
			t.AppendRow(table.Row{
				info.Relation,
				info.Type,
				yesNo(info.Override),
				yesNo(info.Importing),
				yesNo(info.Authored),
				strings.Join(info.Attributes, ", "),
			})
		}

		t.Render()

		return nil
	default:
		return fmt.Errorf("unknown format %q (want table or yaml)", format)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
