package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kho/gofst"
)

func newProjectCmd() *cobra.Command {
	var projectType string
	cmd := &cobra.Command{
		Use:   "project [in] [out]",
		Short: "Project the transducer onto its input or output tape, turning it into an acceptor",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := ioArgs(args)
			fst, err := readFst(in)
			if err != nil {
				return err
			}
			var pt gofst.ProjectType
			switch projectType {
			case "input":
				pt = gofst.ProjectInput
			case "output":
				pt = gofst.ProjectOutput
			default:
				return fmt.Errorf("unknown --project_type %q, want input or output", projectType)
			}
			if err := gofst.Project[gofst.TropicalWeight](fst, pt); err != nil {
				return err
			}
			return writeFst(out, fst)
		},
	}
	cmd.Flags().StringVar(&projectType, "project_type", "input", "tape to keep: input or output")
	return cmd
}
