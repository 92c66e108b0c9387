package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "Manage the learned classification pattern cache",
		Long: `Inspect and manage the cache of learned field patterns: structural
fingerprints remembered from previously successful classifications.`,
	}

	cmd.AddCommand(patternsListCmd())
	cmd.AddCommand(patternsShowCmd())
	cmd.AddCommand(patternsClearCmd())

	return cmd
}

func patternsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learned patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			patterns, err := db.ListLearnedPatterns(ctx)
			if err != nil {
				return err
			}
			if len(patterns) == 0 {
				fmt.Println("no learned patterns")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FINGERPRINT\tCATEGORY\tCONFIDENCE\tSITE\tSEEN\tUSES")
			for _, p := range patterns {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%d\n",
					p.Fingerprint, p.Category, p.Confidence, p.Site,
					p.SeenAt.Format("2006-01-02 15:04"), p.UseCount)
			}
			return tw.Flush()
		},
	}
}

func patternsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <fingerprint>",
		Short: "Show one learned pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := db.GetLearnedPattern(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("fingerprint: %s\n", p.Fingerprint)
			fmt.Printf("category:    %s\n", p.Category)
			fmt.Printf("confidence:  %.2f\n", p.Confidence)
			fmt.Printf("site:        %s\n", p.Site)
			fmt.Printf("seen:        %s\n", p.SeenAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("uses:        %d\n", p.UseCount)
			return nil
		},
	}
}

func patternsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every learned pattern",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := db.CountLearnedPatterns(ctx)
			if err != nil {
				return err
			}
			if err := db.ClearLearnedPatterns(ctx); err != nil {
				return err
			}
			fmt.Printf("cleared %d learned patterns\n", count)
			return nil
		},
	}
}
