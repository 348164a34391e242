package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newShortestDistanceCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "shortestdistance [in]",
		Short: "Print the shortest distance from the start state to every state (or, with --reverse, from every state to the final states)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := ""
			if len(args) > 0 {
				in = args[0]
			}
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			sr := gofst.TropicalSemiring{}
			var d []gofst.TropicalWeight
			if reverse {
				d, err = gofst.ShortestDistanceToFinal[gofst.TropicalWeight](fst, sr)
			} else {
				d, err = gofst.ShortestDistance[gofst.TropicalWeight](fst, sr)
			}
			if err != nil {
				return err
			}
			for s, w := range d {
				fmt.Printf("%d\t%g\n", s, float32(w))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "compute distance to the final states instead of from the start state")
	return cmd
}
