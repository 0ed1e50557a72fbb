package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/copperline/records-api/deploy"
)

func newTemplateCmd() *cobra.Command {
	var (
		outputFormat string
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Emit the CloudFormation template for the records service",
		Long: `Template serializes the declared deployment to CloudFormation.

Examples:
    records-api template
    records-api template -o template.json
    records-api template --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(outputFormat, outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runTemplate(format, outputFile string) error {
	template, err := deploy.Stack().Build()
	if err != nil {
		return fmt.Errorf("building template: %w", err)
	}

	var data []byte
	switch format {
	case "json":
		data, err = template.JSON()
	case "yaml":
		data, err = template.YAML()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	fmt.Printf("Wrote %s\n", outputFile)
	return nil
}
