package main

import (
	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect [in] [out]",
		Short: "Remove states that are not on any successful path",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			sr := gofst.TropicalSemiring{}
			if err := gofst.Connect[gofst.TropicalWeight](fst, sr); err != nil {
				return err
			}
			return writeFst(out, fst)
		},
	}
}
