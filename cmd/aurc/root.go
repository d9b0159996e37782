package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ezrec/aurc/internal/logging"
	"github.com/ezrec/aurc/translate"
)

// app is the state shared by all subcommands.
type app struct {
	logger *log.Logger
	lang   string
	debug  bool
}

func newRootCmd() *cobra.Command {
	cli := &app{}

	root := &cobra.Command{
		Use:   "aurc",
		Short: "Aurora minimal ISA toolchain",
		Long:  "Compile program descriptions to manifests, assemble manifests into flat images, and scan images for control transfer candidates.",

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(cli.lang) != 0 {
				if err := translate.SetLanguage(cli.lang); err != nil {
					return err
				}
			}
			cli.logger = logging.NewLoggerWithWriter(cmd.ErrOrStderr())
			if cli.debug {
				cli.logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cli.lang, "lang", "", "Message language, as a BCP 47 tag")
	root.PersistentFlags().BoolVarP(&cli.debug, "debug", "d", false, "Debug logging")

	root.AddCommand(
		cli.compileCmd(),
		cli.assembleCmd(),
		cli.analyzeCmd(),
		cli.buildCmd(),
		schemaCmd(),
	)

	return root
}

// nopWriteCloser keeps the command's output stream open.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openInput opens a named file, or the command input for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

// createOutput creates a named file, or the command output for "-".
func createOutput(cmd *cobra.Command, name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(name)
}

// writeOutput writes to a named output, closing it afterwards.
func writeOutput(cmd *cobra.Command, name string, wt io.WriterTo) (err error) {
	ouf, err := createOutput(cmd, name)
	if err != nil {
		return
	}
	defer func() {
		if cerr := ouf.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = wt.WriteTo(ouf)
	return
}
