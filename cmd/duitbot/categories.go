package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duitbot/duitbot/internal/category"
	"github.com/duitbot/duitbot/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List canonical categories and their synonym counts",
		RunE: func(_ *cobra.Command, _ []string) error {
			normalizer, err := category.NewDefaultNormalizer()
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Kategori"))
			for _, canonical := range normalizer.Canonical() {
				fmt.Printf("%-16s %s\n", canonical,
					cli.SubtleStyle.Render(fmt.Sprintf("%d sinonim", normalizer.SynonymCount(canonical))))
			}
			return nil
		},
	}
}
