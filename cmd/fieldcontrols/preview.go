package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldcontrols/pkg/controls"
	"github.com/goliatone/go-fieldcontrols/pkg/renderers/text"
	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

func newPreviewCommand(debugMode *bool) *cobra.Command {
	var templatePath string

	command := &cobra.Command{
		Use:   "preview [schema]",
		Short: "Print the schema editor preview of every field, hidden ones included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(*debugMode)
			if err != nil {
				return err
			}

			defs, err := schema.LoadFile(schemaPath(cfg, args))
			if err != nil {
				return err
			}

			builder := controls.NewPreviewBuilder(
				controls.WithStyle(cfg.Style()),
				controls.WithLogger(logger),
			)
			widgets, err := builder.Build(defs)
			if err != nil {
				return err
			}

			flags, err := cfg.FlagConverter()
			if err != nil {
				return err
			}
			options := []text.Option{text.WithFlagConverter(flags)}
			if templatePath != "" {
				source, err := readFile(templatePath)
				if err != nil {
					return err
				}
				options = append(options, text.WithTemplate(source))
			}
			renderer, err := text.New(options...)
			if err != nil {
				return err
			}
			out, err := renderer.Render(widgets)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	command.Flags().StringVar(&templatePath, "template", "", "pongo2 template used instead of the built-in preview layout")
	return command
}
