package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (app *app) buildCmd() *cobra.Command {
	var opts imageOptions
	var manifestFile string

	cmd := &cobra.Command{
		Use:   "build SCRIPT",
		Short: "Compile, assemble and analyze a program description script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mf, err := app.compile(cmd, args[0])
			if err != nil {
				return err
			}

			if len(manifestFile) != 0 {
				if err = writeOutput(cmd, manifestFile, mf); err != nil {
					return err
				}
			}

			img, err := app.assemble(args[0], strings.NewReader(mf.String()), &opts)
			if err != nil {
				return err
			}

			return app.report(cmd, img, &opts)
		},
	}

	opts.addFlags(cmd, true)
	cmd.Flags().StringVar(&manifestFile, "manifest", "", "Also write the manifest to this file")

	return cmd
}
