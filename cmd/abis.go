package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evm-tools/calldecode/internal/decoder"
	"github.com/evm-tools/calldecode/internal/ui"
)

var abisVerbose bool

var abisCmd = &cobra.Command{
	Use:   "abis",
	Short: "List the interfaces in the catalogue",
	Long: `List every interface the decoder knows about, in load order.

Built-ins come first, then ABI JSON files from --abi-dir in filename
order. When two interfaces define the same selector, the earlier one
wins, so this order is also the match precedence.

Examples:
  calldecode abis
  calldecode abis --functions
  calldecode abis --abi-dir ./abis`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defs := catalogue()

		if abisVerbose {
			for _, def := range defs {
				var pairs [][2]string
				for _, fn := range def.Functions() {
					sig := decoder.CanonicalSignature(fn.Name, fn.Inputs)
					sel := decoder.ComputeSelector(fn.Name, fn.Inputs)
					pairs = append(pairs, [2]string{sel.Hex(), ui.Val(sig)})
				}
				fmt.Println(ui.KeyValueBlock(def.Name, pairs))
			}
			return nil
		}

		table := ui.NewTable([]ui.Column{
			{Title: "#", Width: 3},
			{Title: "Interface", Width: 24},
			{Title: "Functions", Width: 10},
			{Title: "Sample", Width: 40},
		})
		for i, def := range defs {
			fns := def.Functions()
			sample := ""
			if len(fns) > 0 {
				sample = decoder.CanonicalSignature(fns[0].Name, fns[0].Inputs)
			}
			table.AddRow(ui.Row{
				fmt.Sprintf("%d", i+1),
				def.Name,
				fmt.Sprintf("%d", len(fns)),
				sample,
			})
		}

		fmt.Println(strings.TrimRight(table.Render(), "\n"))
		return nil
	},
}

func init() {
	abisCmd.Flags().BoolVar(&abisVerbose, "functions", false, "list every function with its selector")
}
