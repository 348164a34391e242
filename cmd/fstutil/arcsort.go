package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newArcSortCmd() *cobra.Command {
	var sortKey string
	cmd := &cobra.Command{
		Use:   "arcsort [in] [out]",
		Short: "Sort the outgoing transitions of every state by input or output label",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			var cmp gofst.TrCompare[gofst.TropicalWeight]
			switch sortKey {
			case "ilabel":
				cmp = gofst.IlabelCompare[gofst.TropicalWeight]
			case "olabel":
				cmp = gofst.OlabelCompare[gofst.TropicalWeight]
			default:
				return fmt.Errorf("unknown --sort_type %q, want ilabel or olabel", sortKey)
			}
			if err := gofst.ArcSort[gofst.TropicalWeight](fst, cmp); err != nil {
				return err
			}
			return writeFst(out, fst)
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort_type", "ilabel", "sort key: ilabel or olabel")
	return cmd
}

func ioArgs(args []string) (in, out string) {
	if len(args) > 0 {
		in = args[0]
	}
	if len(args) > 1 {
		out = args[1]
	}
	return
}
