package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [key...]",
		Short: "Insert integer keys in the given order and print the resulting tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := newTree(cmd)
			if err != nil {
				return err
			}
			for _, arg := range args {
				k, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Wrapf(err, "parsing key %q", arg)
				}
				if err := tree.Insert(k, arg); err != nil {
					return err
				}
			}
			deletes, err := cmd.Flags().GetIntSlice("delete")
			if err != nil {
				return err
			}
			for _, k := range deletes {
				tree.Delete(k)
			}
			printData, err := cmd.Flags().GetBool("data")
			if err != nil {
				return err
			}
			return tree.Fprint(cmd.OutOrStdout(), printData)
		},
	}
	cmd.Flags().Bool("data", false, "print the values stored under each key")
	cmd.Flags().IntSlice("delete", nil, "keys to delete after inserting")
	return cmd
}
