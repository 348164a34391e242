package main

import (
	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newRmFinalEpsilonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rmfinalepsilon [in] [out]",
		Short: "Fold epsilon-only suffixes into the final weight they lead to",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			sr := gofst.TropicalSemiring{}
			if err := gofst.RmFinalEpsilon[gofst.TropicalWeight](fst, sr); err != nil {
				return err
			}
			return writeFst(out, fst)
		},
	}
}
