// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/langgate/internal/core/language"
	"github.com/taibuivan/langgate/internal/core/otp"
	"github.com/taibuivan/langgate/internal/platform/config"
)

func newLanguagesCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the language catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.CatalogPath = catalogPath
			}
			catalog, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return writeLanguages(cmd.OutOrStdout(), catalog)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog to list instead of CATALOG_PATH")
	return cmd
}

func writeLanguages(w io.Writer, catalog *language.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tFLAG\tNAME\tMEDIUM\tTRANSLATION")
	for _, l := range catalog.Languages() {
		text, _ := catalog.Translation(l.Code)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Code, l.Flag, l.Name, otp.MediumFor(l.Code), text)
	}
	return tw.Flush()
}
