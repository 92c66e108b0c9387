package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neerajdhurandher/autofill-engine/internal/cli"
	"github.com/neerajdhurandher/autofill-engine/internal/common"
)

func detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect and classify the form fields of a page",
		Long: `Scan an HTML page for form controls, classify each one against the
field taxonomy, and report the detected categories with confidences.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pagePath, _ := cmd.Flags().GetString("page")
			host, _ := cmd.Flags().GetString("site")

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
			if len(det.Fields) == 0 {
				return common.NewUserError(common.ErrNoControls,
					fmt.Sprintf("no form controls found in %s", pagePath))
			}

			fmt.Print(cli.RenderDetection(det))
			return nil
		},
	}

	cmd.Flags().String("page", "", "path to the HTML page to scan")
	cmd.Flags().String("site", "", "hostname of the page, for site-specific selectors")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}
