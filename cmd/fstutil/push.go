package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newPushCmd() *cobra.Command {
	var direction string
	cmd := &cobra.Command{
		Use:   "push [in] [out]",
		Short: "Push transition weight toward the start state or the final states",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			var rt gofst.ReweightType
			switch direction {
			case "toinitial":
				rt = gofst.ReweightToInitial
			case "tofinal":
				rt = gofst.ReweightToFinal
			default:
				return fmt.Errorf("unknown --direction %q, want toinitial or tofinal", direction)
			}
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			sr := gofst.TropicalSemiring{}
			if err := gofst.PushWeights[gofst.TropicalWeight](fst, sr, rt); err != nil {
				return fmt.Errorf("push: %w", err)
			}
			return writeFst(out, fst)
		},
	}
	cmd.Flags().StringVar(&direction, "direction", "toinitial", "push direction: toinitial or tofinal")
	return cmd
}
