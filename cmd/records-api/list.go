package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/copperline/records-api/deploy"
)

// listedResource is a single resource in the list output.
type listedResource struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func newListCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared resources",
		Long: `List displays every resource in the records service deployment.

Examples:
    records-api list
    records-api list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runList(format string) error {
	entries := deploy.Stack().Entries()

	resources := make([]listedResource, 0, len(entries))
	for _, e := range entries {
		resources = append(resources, listedResource{
			Name: e.Name,
			Type: e.Resource.ResourceType(),
		})
	}

	// Sort by name for consistent output
	sort.Slice(resources, func(i, j int) bool {
		return resources[i].Name < resources[j].Name
	})

	switch format {
	case "json":
		data, err := json.MarshalIndent(resources, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		fmt.Printf("Declared resources (%d):\n\n", len(resources))
		for _, res := range resources {
			fmt.Printf("  %s: %s\n", res.Name, res.Type)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}
