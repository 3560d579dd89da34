package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/internal/presentation/graph"
	"github.com/aretw0/canopy/pkg/codec"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the tree visualization",
	Long:  `Reads a YAML tree definition and outputs a Mermaid diagram (graph TD) representing the component tree.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readDefinition(args[0])
		if err != nil {
			fmt.Printf("Error reading definition: %v\n", err)
			os.Exit(1)
		}

		root, err := codec.Decode(data)
		if err != nil {
			fmt.Printf("Error building tree: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(root))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
