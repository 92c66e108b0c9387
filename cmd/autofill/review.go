package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neerajdhurandher/autofill-engine/internal/cli"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
	"github.com/neerajdhurandher/autofill-engine/internal/tui"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Interactively review classifications before filling",
		Long: `Step through the detected fields one by one, confirming, rejecting or
re-labeling each classification. With --profile, the reviewed fields are
filled afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pagePath, _ := cmd.Flags().GetString("page")
			profilePath, _ := cmd.Flags().GetString("profile")
			host, _ := cmd.Flags().GetString("site")
			outPath, _ := cmd.Flags().GetString("out")
			below, _ := cmd.Flags().GetFloat64("below")

			doc, err := loadPage(pagePath)
			if err != nil {
				return err
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			eng, _, err := newEngine(ctx, db, false)
			if err != nil {
				return err
			}

			det, err := eng.Detect(ctx, doc.Selection, host)
			if err != nil {
				return err
			}

			var toReview []*model.DetectedField
			for _, f := range det.Fields {
				if f.Classified() && f.Confidence < below {
					toReview = append(toReview, f)
				}
			}
			if len(toReview) == 0 {
				fmt.Println("nothing to review")
				return nil
			}

			completed, err := tui.Run(toReview, taxonomy.Default())
			if err != nil {
				return err
			}
			if !completed {
				fmt.Println("review aborted")
				return nil
			}

			if profilePath == "" {
				fmt.Print(cli.RenderDetection(det))
				return nil
			}

			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			result := eng.Fill(ctx, det, profile)
			fmt.Print(cli.RenderFillResult(result))

			if outPath != "" && result.FilledCount > 0 {
				if err := writeDocument(doc, outPath); err != nil {
					return err
				}
				fmt.Printf("filled page written to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().String("page", "", "path to the HTML page to scan")
	cmd.Flags().String("profile", "", "fill from this profile after review")
	cmd.Flags().String("site", "", "hostname of the page, for site-specific selectors")
	cmd.Flags().String("out", "", "write the filled page to this path")
	cmd.Flags().Float64("below", 1.01, "only review fields below this confidence")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}
