// Package hull implements the `convexhull` command.
package hull

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/courselab/convexhull"
)

type flags struct {
	points   int
	seed     int64
	maxCoord int
}

// MakeCommand returns a `convexhull` command.
func MakeCommand() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "convexhull",
		Short: "Generate random points and print their convex hull edges.",
		Long: `Draw --points random points in [1, --range] x [1, --range] and run the
brute-force O(n^3) hull search. Points are printed as "point x y" lines and
hull edges as "segment x1 y1 x2 y2" lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, cmd.Flags().Changed("seed"), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&flags.points, "points", 0, "number of random points (required, > 0)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed; random when unset")
	cmd.Flags().IntVar(&flags.maxCoord, "range", convexhull.DefaultRange, "upper bound for both coordinates")
	return cmd
}

func run(flags *flags, seeded bool, out io.Writer) error {
	opts := []convexhull.Option{convexhull.WithRange(flags.maxCoord)}
	if seeded {
		opts = append(opts, convexhull.WithSeed(flags.seed))
	}
	points, err := convexhull.RandomPoints(flags.points, opts...)
	if err != nil {
		return err
	}
	logrus.WithField("points", len(points)).Info("Points created")

	segments, err := convexhull.BruteForce(points)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"segments": len(segments),
		"vertices": len(convexhull.Vertices(segments)),
	}).Info("Hull computed")

	for _, p := range points {
		fmt.Fprintf(out, "point %d %d\n", p.X, p.Y)
	}
	for _, s := range segments {
		fmt.Fprintf(out, "segment %d %d %d %d\n", s.From.X, s.From.Y, s.To.X, s.To.Y)
	}
	return nil
}
