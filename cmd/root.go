package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/evm-tools/calldecode/internal/abi"
	"github.com/evm-tools/calldecode/internal/config"
	"github.com/evm-tools/calldecode/internal/decoder"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/evm-tools/calldecode/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
	abiDir  string
	logger  zerolog.Logger
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "calldecode",
	Short: "Decode EVM calldata into human-readable call trees",
	Long: `calldecode — inspect raw transaction calldata offline.

  Decodes a hex calldata blob against a catalogue of known interfaces
  (ERC-20, WETH, ERC-721, Gnosis Safe, smart accounts, Multicall, plus
  your own ABI JSON files), and recursively unwraps forwarding calls
  like a multisig execTransaction or an account execute down to the
  innermost concrete action. No RPC, no network. Pure decoding.

Catalogue order matters: when two interfaces share a selector, the one
loaded first wins. Built-ins load first, then ABI files from --abi-dir
(default: <config>/abis) in filename order.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// catalogue assembles the full interface catalogue: built-ins first, then
// user ABI JSON files in sorted filename order.
func catalogue() []abi.Definition {
	defs := abi.Catalogue()

	dir := cfg.ABIDirPath()
	if abiDir != "" {
		dir = abiDir
	}
	extra, err := abi.LoadDir(dir, logger)
	if err != nil {
		logger.Warn().Str("dir", dir).Err(err).Msg("could not load user ABI files")
		return defs
	}
	return append(defs, extra...)
}

// buildIndex builds the selector index over the full catalogue.
func buildIndex() *decoder.Index {
	return decoder.BuildIndex(catalogue(), logger)
}

func init() {
	// CALLDECODE_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("CALLDECODE_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.calldecode)")
	rootCmd.PersistentFlags().StringVar(&abiDir, "abi-dir", "", "directory of extra ABI JSON files (default: <config>/abis)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		decodeCmd,
		selectorCmd,
		keccakCmd,
		abisCmd,
		checksumCmd,
	)
}
