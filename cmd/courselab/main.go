// courselab runs the edit-distance, river-crossing and convex-hull solvers
// from the command line.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/courselab/cmd/courselab/crossing"
	"github.com/katalvlaran/courselab/cmd/courselab/hull"
	"github.com/katalvlaran/courselab/cmd/courselab/minedit"
)

type globalFlags struct {
	logLevel string
	logJSON  bool
}

func makeRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "courselab",
		Short:         "courselab solves a few classic algorithm exercises.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "logrus level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "log as JSON instead of text")

	root.AddCommand(minedit.MakeCommand())
	root.AddCommand(crossing.MakeCommand())
	root.AddCommand(hull.MakeCommand())

	return root
}

func configureLogging(flags *globalFlags) error {
	level, err := logrus.ParseLevel(flags.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logrus.SetLevel(level)
	if flags.logJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

func main() {
	if err := makeRootCommand().Execute(); err != nil {
		logrus.WithError(err).Fatal("courselab failed")
	}
}
