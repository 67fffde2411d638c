// Package commands wires the glasscut CLI: flag and config handling plus
// the pack and compare subcommands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glasscut/internal/model"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "glasscut",
	Short: "Glass sheet cutting optimizer",
	Long: `GlassCut packs a rectangular cut list onto stock sheets with a
maximal-rectangles heuristic and reports utilization, waste, and any
pieces that could not be placed.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.glasscut.yaml)")
	pf.Float64("sheet-width", 72, "stock sheet width")
	pf.Float64("sheet-height", 84, "stock sheet height")
	pf.Bool("rotate", true, "allow 90 degree rotation of pieces")
	pf.Int("max-sheets", 100, "maximum number of sheets to open")
	pf.String("heuristic", "bssf", "placement heuristic: bssf, baf or bottomleft")
	pf.String("algorithm", "greedy", "packing algorithm: greedy or genetic")
	pf.Float64("kerf", 0, "cut allowance around each placement")
	pf.Float64("trim", 0, "unusable margin around the sheet edge")
	pf.Int("precision", 2, "decimal places kept for dimension comparisons")

	for _, name := range []string{
		"sheet-width", "sheet-height", "rotate", "max-sheets",
		"heuristic", "algorithm", "kerf", "trim", "precision",
	} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(compareCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".glasscut.yaml"))
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("GLASSCUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// settingsFromConfig resolves the engine settings from flags, environment
// and config file, in that precedence order.
func settingsFromConfig() (model.Settings, error) {
	heuristic, err := model.ParseHeuristic(viper.GetString("heuristic"))
	if err != nil {
		return model.Settings{}, err
	}
	algorithm, err := model.ParseAlgorithm(viper.GetString("algorithm"))
	if err != nil {
		return model.Settings{}, err
	}

	s := model.DefaultSettings()
	s.SheetWidth = viper.GetFloat64("sheet-width")
	s.SheetHeight = viper.GetFloat64("sheet-height")
	s.AllowRotation = viper.GetBool("rotate")
	s.MaxSheets = viper.GetInt("max-sheets")
	s.Heuristic = heuristic
	s.Algorithm = algorithm
	s.KerfWidth = viper.GetFloat64("kerf")
	s.EdgeTrim = viper.GetFloat64("trim")
	s.Precision = viper.GetInt("precision")
	return s, nil
}
