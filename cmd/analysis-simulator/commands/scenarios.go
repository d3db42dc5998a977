package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideaforge/analysis-simulator/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenarios a call can be configured to produce",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, sc := range scenario.All() {
			if !sc.Fault() {
				fmt.Printf("%-18s returns a payload\n", sc)
				continue
			}
			e := scenario.ErrorFor(sc, "<operation>")
			fmt.Printf("%-18s HTTP %d  %s\n", sc, e.HTTPStatus, e.Code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
