package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ezrec/aurc/lower"
)

// compile loads a program description script and lowers it.
func (app *app) compile(cmd *cobra.Command, script string) (mf lower.Manifest, err error) {
	inf, err := openInput(cmd, script)
	if err != nil {
		return
	}
	defer inf.Close()

	src, err := io.ReadAll(inf)
	if err != nil {
		return
	}

	ld := &lower.Loader{Logger: app.logger}
	prog, err := ld.Load(script, src)
	if err != nil {
		return
	}

	mf, err = lower.Lower(prog)
	if err != nil {
		err = fmt.Errorf("%v: %w", script, err)
		return
	}

	app.logger.Info("compiled", "script", script, "kind", prog.Kind, "lines", len(mf))
	return
}

func (app *app) compileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile SCRIPT",
		Short: "Lower a program description script to a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mf, err := app.compile(cmd, args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, mf)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Manifest output file")

	return cmd
}
