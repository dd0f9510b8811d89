package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tcgcatalog/internal/validate"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report data quality findings in the loaded catalog",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	report, err := validate.Run(ctx, db)
	if err != nil {
		return err
	}

	if len(report.Issues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	printed := false
	for _, group := range []struct {
		severity validate.Severity
		title    string
	}{
		{validate.SeverityError, "Errors"},
		{validate.SeverityWarn, "Warnings"},
		{validate.SeverityInfo, "Info"},
	} {
		if report.Count(group.severity) == 0 {
			continue
		}
		if printed {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "%s (%d):\n", group.title, report.Count(group.severity))
		printIssues(os.Stdout, report.Issues, group.severity)
		printed = true
	}

	if report.HasErrors() {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printIssues(out io.Writer, issues []validate.Issue, severity validate.Severity) {
	for _, issue := range issues {
		if issue.Severity != severity {
			continue
		}
		fmt.Fprintf(out, "  - %s (%s)\n", issue.Message, issue.Code)
	}
}
