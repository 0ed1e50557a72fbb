// Command records-api works with the records service deployment.
//
// Usage:
//
//	records-api template              Emit the CloudFormation template
//	records-api list                  List declared resources
//	records-api version               Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "records-api",
		Short: "Records service deployment tooling",
		Long: `records-api synthesizes the CloudFormation template for the records
service: the REST API, the Cognito user pool, the DynamoDB tables, and the
two CRUD handler functions.

The deployment itself is declared in the deploy package; this tool only
renders it:

    records-api template -o template.json
    records-api template --format yaml`,
	}

	rootCmd.AddCommand(
		newTemplateCmd(),
		newListCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("records-api %s\n", getVersion())
		},
	}
}
