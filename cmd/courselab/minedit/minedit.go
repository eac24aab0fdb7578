// Package minedit implements the `editdistance` command.
package minedit

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/courselab/editdistance"
	"github.com/katalvlaran/courselab/internal/pairs"
)

const rule = "=============================="

type flags struct {
	maxLength       int
	noTransposition bool
	limit           int
}

// MakeCommand returns an `editdistance` command.
func MakeCommand() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "editdistance",
		Short: "Print the minimum edit distance and every optimal alignment of each input pair.",
		Long: `Read line-delimited pairs of tab-separated strings from stdin and, for each
pair, print every alignment that achieves the minimum edit distance followed
by the distance itself. Operations are insert, delete, substitute and
adjacent transpose, each of unit cost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&flags.maxLength, "max-length", editdistance.DefaultMaxLength, "longest accepted string, in characters")
	cmd.Flags().BoolVar(&flags.noTransposition, "no-transposition", false, "disable the adjacent-swap operation")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "print at most this many alignments per pair (0 means all)")
	return cmd
}

func run(flags *flags, in io.Reader, out io.Writer) error {
	if flags.limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", flags.limit)
	}
	logrus.WithFields(logrus.Fields{
		"insert":     1,
		"delete":     1,
		"substitute": 1,
		"transpose":  !flags.noTransposition,
		"max-length": flags.maxLength,
	}).Info("Operation costs")

	opts := []editdistance.Option{
		editdistance.WithMaxLength(flags.maxLength),
		editdistance.WithTransposition(!flags.noTransposition),
		editdistance.WithLimit(flags.limit),
	}

	r := pairs.NewReader(in)
	for {
		p, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		log := logrus.WithFields(logrus.Fields{"line": p.Line, "source": p.Source, "target": p.Target})

		if err := report(out, p, opts, log); err != nil {
			if errors.Is(err, editdistance.ErrLengthExceeded) {
				log.WithError(err).Warn("Skipping pair")
				continue
			}
			return err
		}
	}
}

func report(out io.Writer, p pairs.Pair, opts []editdistance.Option, log *logrus.Entry) error {
	t, err := editdistance.ComputeTables(p.Source, p.Target, opts...)
	if err != nil {
		return err
	}
	e, err := editdistance.NewEnumerator(t, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n%s vs. %s\n%s\n", rule, p.Source, p.Target, rule)
	for {
		a, ok := e.Next()
		if !ok {
			break
		}
		fmt.Fprintf(out, "\n[%d] %s\n", e.Count(), rule)
		if len(a) > 0 {
			fmt.Fprintln(out, a)
		}
	}
	if err := e.Err(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nMinEdit(%s, %s) = %d\n", p.Source, p.Target, t.Distance())

	log.WithFields(logrus.Fields{"distance": t.Distance(), "alignments": e.Count()}).Debug("Pair done")
	return nil
}
