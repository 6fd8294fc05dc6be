package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crystalix007/numband/numband"
)

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [text...]",
		Short: "Print the numbers found in the text, sorted and deduplicated",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), numband.CleanUp(text))

			return err
		},
	}
}
