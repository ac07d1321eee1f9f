package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evm-tools/calldecode/internal/decoder"
	"github.com/evm-tools/calldecode/internal/ui"
)

var decodeJSON bool

var decodeCmd = &cobra.Command{
	Use:   "decode <calldata>",
	Short: "Decode EVM calldata into a human-readable call tree",
	Long: `Decode raw calldata (hex) against the interface catalogue.

Matches the 4-byte selector, unpacks the arguments, and recursively
unwraps forwarding calls (Safe execTransaction, account execute,
Multicall) down to the innermost action. No RPC call needed.

Examples:
  calldecode decode 0xa9059cbb000000000000000000000000d8da6bf26964af9d7eed9e03e53415d37aa960450000000000000000000000000000000000000000000000000de0b6b3a7640000
  calldecode decode --json 0x095ea7b3... | jq .
  calldecode decode --abi-dir ./abis 0x1cff79cd...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calldata := args[0]

		clean := strings.TrimPrefix(strings.TrimPrefix(calldata, "0x"), "0X")
		if len(clean) == 0 {
			return fmt.Errorf("empty calldata — provide a hex string starting with 0x")
		}

		dec := decoder.New(buildIndex(), logger)
		call := dec.Decode(calldata)

		if decodeJSON {
			out, err := json.MarshalIndent(call, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if call == nil {
			selector := calldata
			if len(clean) >= 8 {
				selector = "0x" + strings.ToLower(clean[:8])
			}
			pairs := [][2]string{
				{"Selector", selector},
				{"Match", ui.Warn("no known interface for this selector")},
				{"Hint", ui.Hint("add an ABI JSON file under --abi-dir to teach it")},
			}
			fmt.Println(ui.KeyValueBlock("Decoded Calldata", pairs))
			return nil
		}

		fmt.Println(ui.RenderCall(call))
		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "print the decoded call tree as JSON")
}
