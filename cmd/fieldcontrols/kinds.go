package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldcontrols/pkg/convert"
	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the field kinds a schema may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			var converter convert.KindConverter
			for _, kind := range schema.BaseKinds() {
				name, err := converter.Convert(kind)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "%s\t%s\n", kind, name); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
