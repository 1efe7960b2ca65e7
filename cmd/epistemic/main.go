// Command epistemic evaluates multi-agent epistemic modal logic formulas
// against Kripke models described in YAML files or the compact wire format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rfielding/kripke-epistemic/epistemic"
)

var (
	logger *zap.Logger

	debugMode bool
	modelPath string
	wireForm  string
	worldIdx  int
	useLatex  bool
	useASCII  bool
)

var rootCmd = &cobra.Command{
	Use:   "epistemic",
	Short: "Model checker for multi-agent epistemic modal logic",
	Long: `Evaluate formulas of multi-agent epistemic modal logic (individual,
distributed and common knowledge) at a world of an explicit Kripke model.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debugMode {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <formula>",
	Short: "Evaluate a formula at a world of a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel()
		if err != nil {
			return err
		}
		f, err := epistemic.Parse(args[0])
		if err != nil {
			return err
		}
		logger.Debug("Evaluating formula",
			zap.String("formula", f.String()),
			zap.Int("world", worldIdx),
			zap.Strings("agents", m.Agents()))
		result, err := epistemic.Evaluate(m, worldIdx, f)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <formula>",
	Short: "Render a formula in symbolic, LaTeX or canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := epistemic.Parse(args[0])
		if err != nil {
			return err
		}
		switch {
		case useLatex:
			fmt.Println(epistemic.LaTeX(f))
		case useASCII:
			fmt.Println(f.String())
		default:
			fmt.Println(epistemic.Unicode(f))
		}
		return nil
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Emit a Graphviz DOT rendering of a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel()
		if err != nil {
			return err
		}
		fmt.Print(epistemic.Graphviz(m))
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a model between YAML and the wire format",
	Long: `With --model, prints the model's wire form. With --wire, prints the
model as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wireForm != "" {
			m, err := epistemic.Deserialize(wireForm)
			if err != nil {
				return err
			}
			return epistemic.EncodeModel(os.Stdout, m)
		}
		m, err := loadModel()
		if err != nil {
			return err
		}
		s, err := epistemic.Serialize(m)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}

var examplesCmd = &cobra.Command{
	Use:   "example <muddy|cards>",
	Short: "Print a built-in example model as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var m *epistemic.Model
		switch args[0] {
		case "muddy":
			m = epistemic.MuddyChildrenExample()
		case "cards":
			m = epistemic.CardDealExample()
		default:
			return fmt.Errorf("unknown example %q", args[0])
		}
		return epistemic.EncodeModel(os.Stdout, m)
	},
}

func loadModel() (*epistemic.Model, error) {
	switch {
	case modelPath != "":
		logger.Debug("Loading model file", zap.String("path", modelPath))
		return epistemic.LoadModelFile(modelPath)
	case wireForm != "":
		logger.Debug("Parsing wire-format model", zap.Int("len", len(wireForm)))
		return epistemic.Deserialize(wireForm)
	default:
		return nil, fmt.Errorf("no model given: use --model or --wire")
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&modelPath, "model", "m", "", "path to a YAML model file")
	rootCmd.PersistentFlags().StringVarP(&wireForm, "wire", "w", "", "model in the compact wire format")

	checkCmd.Flags().IntVar(&worldIdx, "world", 0, "world index to evaluate at")
	fmtCmd.Flags().BoolVar(&useLatex, "latex", false, "render LaTeX instead of Unicode")
	fmtCmd.Flags().BoolVar(&useASCII, "text", false, "render canonical text instead of Unicode")

	rootCmd.AddCommand(checkCmd, fmtCmd, dotCmd, convertCmd, examplesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
