package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/core/fieldtype"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the Doctrine mapping types accepted for scalar fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range fieldtype.All() {
				fmt.Fprintln(a.out, t)
			}
			a.log.Debugf("See %s", document.MappingTypesURL)
			return nil
		},
	}
}
