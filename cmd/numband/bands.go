package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crystalix007/numband/numband"
)

func bandsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bands [text...]",
		Short: "Print the bands for the numbers found in the text",
		Long:  `Extracts numbers from the arguments (or stdin) and prints the partition of the real line they define.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			numbers := numband.Extract(text)

			p, err := numband.Build(numbers)
			if err != nil {
				return err
			}

			a.logger.Debug("built partition", zap.Int("numbers", len(numbers)), zap.Int("bands", len(p)))

			return newRenderer(cmd.OutOrStdout(), a.cfg.Output()).Partition(p)
		},
	}
}
