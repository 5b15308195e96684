// Package main is a CLI utility that wraps MPEG-2 elementary
// streams in DICOM files.
package main

import (
	"os"
	"time"

	"mpg2dcm/pkg/convert"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		stream     bool
		studyKey   string
		uidDB      string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "mpg2dcm <input.mpg> <output.dcm>",
		Short: "Wrap an MPEG-2 elementary stream in a DICOM file",
		Example: `  mpg2dcm endoscopy.mpg endoscopy.dcm
  mpg2dcm --study-key patient42 --config overrides.yaml in.mpg out.dcm`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := convert.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = convert.ReadConfigFile(configPath)
				if err != nil {
					return err
				}
			}
			if stream {
				cfg.DeclareLength = false
			}
			if studyKey != "" {
				cfg.StudyKey = studyKey
			}
			if uidDB != "" {
				cfg.UIDDatabase = uidDB
			}

			converter := &convert.Converter{Log: newLogger(quiet)}
			return converter.Convert(cfg, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to yaml configuration")
	cmd.Flags().BoolVar(&stream, "stream", false, "write undefined length instead of the file size")
	cmd.Flags().StringVar(&studyKey, "study-key", "", "share study identifiers between conversions with the same key")
	cmd.Flags().StringVar(&uidDB, "uid-db", "", "path to the uid database")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	return cmd
}

func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.DebugLevel
	if quiet {
		level = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
