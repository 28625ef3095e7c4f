package main

import (
	"github.com/spf13/cobra"

	"github.com/duitbot/duitbot/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session against the extraction pipeline",
		RunE: func(_ *cobra.Command, _ []string) error {
			pipe, err := buildPipeline()
			if err != nil {
				return err
			}
			return tui.Run(pipe)
		},
	}
}
