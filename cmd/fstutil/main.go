// Command fstutil applies single wFST transforms to the plain-text
// FST format gofst reads and writes, one subcommand per transform.
// Every subcommand hard-wires the Tropical semiring; a weight type
// per binary keeps the tool honest about what it can round-trip.
package main

import (
	"errors"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func main() {
	defer glog.Flush()
	root := &cobra.Command{
		Use:   "fstutil",
		Short: "Transform weighted finite-state transducers in the text FST format",
	}
	root.AddCommand(
		newArcSortCmd(),
		newInvertCmd(),
		newProjectCmd(),
		newReverseCmd(),
		newConnectCmd(),
		newRmFinalEpsilonCmd(),
		newShortestDistanceCmd(),
		newPushCmd(),
	)
	if err := root.Execute(); err != nil {
		glog.Errorf("fstutil: %v", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a command failure to the CLI's documented exit
// codes: 1 for unreadable or malformed input, 2 for an algorithmic
// failure (NonConvergent, division by zero, ...).
func exitCodeFor(err error) int {
	var fe *gofst.FstError
	if !errors.As(err, &fe) {
		return 1
	}
	switch fe.Kind {
	case gofst.ErrInvalidFormat, gofst.ErrUnknownSemiringType, gofst.ErrSemiringMismatch:
		return 1
	default:
		return 2
	}
}
