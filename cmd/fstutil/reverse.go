package main

import (
	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [in] [out]",
		Short: "Reverse the language accepted by the FST",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			sr := gofst.TropicalSemiring{}
			reversed, err := gofst.Reverse[gofst.TropicalWeight](fst, sr)
			if err != nil {
				return err
			}
			return writeFst(out, reversed)
		},
	}
}
