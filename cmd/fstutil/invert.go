package main

import (
	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert [in] [out]",
		Short: "Swap the input and output label of every transition",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			if err := gofst.Invert[gofst.TropicalWeight](fst); err != nil {
				return err
			}
			return writeFst(out, fst)
		},
	}
}
