package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/presentation/tui"
	"github.com/aretw0/canopy/pkg/codec"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a tree definition to its aggregate value",
	Long:  `Reads a YAML tree definition (use "-" for stdin), builds the component tree, and prints the rendered aggregate.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pretty, _ := cmd.Flags().GetBool("pretty")
		workers, _ := cmd.Flags().GetInt("parallel")

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

		tree, err := canopy.New(root,
			canopy.WithLogger(newLogger(cmd)),
			canopy.WithParallelism(workers),
		)
		if err != nil {
			fmt.Printf("Error initializing canopy: %v\n", err)
			os.Exit(1)
		}

		result := tree.Render()

		// Pretty output only makes sense on a TTY; pipes get the raw value.
		if pretty && term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
			render := tui.NewRenderer()
			out, err := render(tui.Summary(result, tree.Stats()))
			if err == nil {
				fmt.Print(out)
				return
			}
		}

		fmt.Printf("RESULT: %s\n", result)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Bool("pretty", false, "Render a formatted summary (TTY only)")
	renderCmd.Flags().IntP("parallel", "j", 0, "Evaluate root subtrees on up to N goroutines")
}
