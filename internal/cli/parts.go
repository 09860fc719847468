package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yantra4d/hyperobject/internal/parts"
)

// partDescriptions maps builder names to one-line summaries for `parts`.
var partDescriptions = map[string]string{
	"rack":     "slotted rack holding N slides vertically",
	"box":      "storage box base with cavity, labels, and latch catches",
	"lid":      "snap-fit lid with skirt, latch arms, and handle",
	"holder":   "single-slide holder with retention rib",
	"slide":    "mock slide at the bare substrate footprint",
	"assembly": "open box, rack, lid, and holder populated with mock slides",
}

// PartInfo describes one buildable part for JSON output.
type PartInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewPartsCommand creates the parts command.
func NewPartsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "parts",
		Short:         "List buildable parts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(rootOpts, cmd)
		},
	}
}

func runParts(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	infos := make([]PartInfo, 0, len(partDescriptions))
	for _, name := range parts.Names() {
		infos = append(infos, PartInfo{Name: name, Description: partDescriptions[name]})
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "  %-10s %s\n", info.Name, info.Description)
	}
	return nil
}
