// Package crossing implements the `rivercrossing` command.
package crossing

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	rc "github.com/katalvlaran/courselab/rivercrossing"
)

type flags struct {
	from     uint8
	to       uint8
	maxDepth int
}

// MakeCommand returns a `rivercrossing` command.
func MakeCommand() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "rivercrossing",
		Short: "Solve the peasant, wolf, goat and cabbage puzzle by depth-first search.",
		Long: `Search every simple path between two states of the puzzle and print each
solution, one <pwgc> state per crossing. Run with --log-level=debug to trace
the search: entered states, refused crossings and backtracking.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Uint8Var(&flags.from, "from", uint8(rc.Start), "initial state, 0-15")
	cmd.Flags().Uint8Var(&flags.to, "to", uint8(rc.Goal), "goal state, 0-15")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", -1, "longest path to explore in crossings (-1 means unbounded)")
	return cmd
}

func run(flags *flags, out io.Writer) error {
	res, err := rc.Solve(rc.State(flags.from), rc.State(flags.to),
		rc.WithMaxDepth(flags.maxDepth),
		rc.WithOnVisit(func(s rc.State, depth int) error {
			logrus.WithFields(logrus.Fields{"state": s, "depth": depth}).Debug("Entering state")
			return nil
		}),
		rc.WithOnSkip(func(from, to rc.State, reason rc.SkipReason) error {
			logrus.WithFields(logrus.Fields{"state": from, "next": to, "reason": reason}).Debug("Skipping crossing")
			return nil
		}),
		rc.WithOnBacktrack(func(s rc.State, depth int) error {
			logrus.WithFields(logrus.Fields{"state": s, "depth": depth}).Debug("Back to state")
			return nil
		}),
	)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"solutions": len(res.Solutions),
		"visits":    res.Visits,
	}).Info("Search finished")

	if len(res.Solutions) == 0 {
		fmt.Fprintln(out, "No solution found.")
		return nil
	}
	for i, path := range res.Solutions {
		fmt.Fprintf(out, "\nSolution %d (%d crossings):\n", i+1, len(path)-1)
		for _, s := range path {
			fmt.Fprintln(out, s)
		}
	}
	return nil
}
