package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ezrec/aurc/analyze"
	"github.com/ezrec/aurc/manifest"
)

// imageOptions are the flags shared by commands that assemble a manifest.
type imageOptions struct {
	labels string
	bin    string
	json   bool
}

func (opts *imageOptions) addFlags(cmd *cobra.Command, report bool) {
	cmd.Flags().StringVar(&opts.labels, "labels", manifest.LABEL_OVERWRITE.String(), "Duplicate label policy: overwrite or reject")
	if report {
		cmd.Flags().StringVar(&opts.bin, "bin", "", "Also write the flat image to this file")
		cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Write the report as JSON")
	}
}

// assemble parses a manifest stream into an image.
func (app *app) assemble(name string, input io.Reader, opts *imageOptions) (img *manifest.Image, err error) {
	policy, err := manifest.ParseLabelPolicy(opts.labels)
	if err != nil {
		return
	}

	asm := &manifest.Assembler{
		Policy: policy,
		Logger: app.logger,
	}

	img, err = asm.Parse(input)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	app.logger.Info("assembled", "manifest", name, "bytes", len(img.Bytes), "labels", len(img.Labels), "runs", len(img.Runs))
	return
}

// assembleFile assembles a named manifest, or the command input for "-".
func (app *app) assembleFile(cmd *cobra.Command, name string, opts *imageOptions) (img *manifest.Image, err error) {
	inf, err := openInput(cmd, name)
	if err != nil {
		return
	}
	defer inf.Close()

	return app.assemble(name, inf, opts)
}

// report analyzes an image, writing the optional flat image and the report.
func (app *app) report(cmd *cobra.Command, img *manifest.Image, opts *imageOptions) (err error) {
	if len(opts.bin) != 0 {
		if err = writeOutput(cmd, opts.bin, img); err != nil {
			return
		}
	}

	rep := analyze.Analyze(img.Runs, img.Labels)
	app.logger.Info("analyzed", "transfers", len(rep.Transfers))

	for _, tr := range rep.Transfers {
		target, ok := tr.Target()
		if !ok {
			continue
		}
		// Locate the manifest line that wrote the destination, if any.
		run, ok := img.RunAt(target)
		if !ok {
			app.logger.Debug("transfer target outside content", "line", tr.LineNo, "offset", fmt.Sprintf("%#04x", tr.Offset), "target", fmt.Sprintf("%#04x", target))
			continue
		}
		app.logger.Debug("transfer", "line", tr.LineNo, "offset", fmt.Sprintf("%#04x", tr.Offset), "target", fmt.Sprintf("%#04x", target), "target_line", run.LineNo)
	}

	if opts.json {
		return rep.WriteJSON(cmd.OutOrStdout(), img.Header)
	}
	return rep.WriteText(cmd.OutOrStdout())
}

func (app *app) assembleCmd() *cobra.Command {
	var opts imageOptions
	var output string

	cmd := &cobra.Command{
		Use:   "assemble MANIFEST",
		Short: "Assemble a manifest into a flat image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := app.assembleFile(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, img)
		},
	}

	opts.addFlags(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Image output file")

	return cmd
}

func (app *app) analyzeCmd() *cobra.Command {
	var opts imageOptions

	cmd := &cobra.Command{
		Use:   "analyze MANIFEST",
		Short: "Assemble a manifest and report its labels and control transfers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := app.assembleFile(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			return app.report(cmd, img, &opts)
		},
	}

	opts.addFlags(cmd, true)

	return cmd
}
