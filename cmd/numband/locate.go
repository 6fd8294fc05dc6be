package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crystalix007/numband/numband"
)

func locateCmd(a *app) *cobra.Command {
	var numbers string

	cmd := &cobra.Command{
		Use:   "locate VALUE",
		Short: "Print the band containing a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "parse value %q", args[0])
			}

			editor := numband.NewEditor(numband.WithLogger(a.logger))

			if _, err := editor.SetText(numbers); err != nil {
				return err
			}

			i, err := editor.Locate(x)
			if err != nil {
				return err
			}

			return newRenderer(cmd.OutOrStdout(), a.cfg.Output()).Band(i, editor.Partition()[i])
		},
	}

	cmd.Flags().StringVarP(&numbers, "numbers", "n", "", "text containing the band boundaries")

	return cmd
}
