package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/neerajdhurandher/autofill-engine/internal/cli"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

func fillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Detect fields and fill them from a profile",
		Long: `Scan an HTML page, classify its form controls, resolve matching values
from the profile, and write them into the page. The filled page can be
saved with --out.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pagePath, _ := cmd.Flags().GetString("page")
			profilePath, _ := cmd.Flags().GetString("profile")
			host, _ := cmd.Flags().GetString("site")
			outPath, _ := cmd.Flags().GetString("out")
			richEvents, _ := cmd.Flags().GetBool("rich-events")

			doc, err := loadPage(pagePath)
			if err != nil {
				return err
			}
			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			eng, sink, err := newEngine(ctx, db, richEvents)
			if err != nil {
				return err
			}

			det, err := eng.Detect(ctx, doc.Selection, host)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(det.Fields),
				progressbar.OptionSetDescription("filling fields"),
				progressbar.OptionClearOnFinish(),
			)
			result := eng.FillWithProgress(ctx, det, profile, func(model.FieldOutcome) {
				_ = bar.Add(1)
			})
			_ = bar.Finish()

			fmt.Print(cli.RenderFillResult(result))
			fmt.Printf("dispatched %d synthetic events\n", len(sink.Events))

			if outPath != "" && result.FilledCount > 0 {
				if err := writeDocument(doc, outPath); err != nil {
					return err
				}
				fmt.Printf("filled page written to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().String("page", "", "path to the HTML page to fill")
	cmd.Flags().String("profile", "", "path to the profile JSON document")
	cmd.Flags().String("site", "", "hostname of the page, for site-specific selectors")
	cmd.Flags().String("out", "", "write the filled page to this path")
	cmd.Flags().Bool("rich-events", false, "dispatch the extended synthetic event sequence")
	_ = cmd.MarkFlagRequired("page")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}
