package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldcontrols/pkg/controls"
	"github.com/goliatone/go-fieldcontrols/pkg/renderers/tui"
	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

func newEditCommand(debugMode *bool) *cobra.Command {
	var (
		valuesPath string
		outputPath string
		format     string
	)

	command := &cobra.Command{
		Use:   "edit [schema]",
		Short: "Fill in one record interactively using the schema's controls",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(*debugMode)
			if err != nil {
				return err
			}

			flags, err := cfg.FlagConverter()
			if err != nil {
				return err
			}

			defs, err := schema.LoadFile(schemaPath(cfg, args))
			if err != nil {
				return err
			}

			surface := controls.NewSurface(
				controls.WithStyle(cfg.Style()),
				controls.WithLogger(logger),
			)
			if err := surface.Load(defs); err != nil {
				return err
			}

			if valuesPath != "" {
				values, err := readValues(valuesPath)
				if err != nil {
					return err
				}
				if err := surface.Registry().Apply(values); err != nil {
					return err
				}
			}

			session := tui.New(
				tui.WithOutputFormat(tui.OutputFormat(format)),
				tui.WithFlagConverter(flags),
				tui.WithTheme(tui.Theme{
					InfoPrefix:  color.New(color.FgCyan).Sprint("i "),
					ErrorPrefix: color.New(color.FgRed).Sprint("! "),
				}),
			)
			out, err := session.Render(cmd.Context(), surface.Registry())
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logger.Info("record written", "path", outputPath, "fields", surface.Registry().Len())
			return nil
		},
	}
	command.Flags().StringVar(&valuesPath, "values", "", "JSON file of key to stored value used to prefill the controls")
	command.Flags().StringVar(&outputPath, "output", "", "output file (stdout if empty)")
	command.Flags().StringVar(&format, "format", string(tui.OutputFormatJSON), "output format: json or pretty")
	return command
}

func readValues(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("invalid values file %s: %w", path, err)
	}
	return values, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
