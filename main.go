package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/bigint/bigint"
	"github.com/lookbusy1344/bigint/calc"
	"github.com/lookbusy1344/bigint/config"
	"github.com/lookbusy1344/bigint/repl"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bigcalc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := bigint.Init(); err != nil {
		return err
	}
	defer bigint.Cleanup()

	var (
		configPath string
		base       int
		uppercase  bool
	)

	rootCmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: platform config dir)")
	rootCmd.PersistentFlags().IntVar(&base, "base", 0, "Output base: 2, 8, 10 or 16 (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&uppercase, "uppercase", false, "Upper-case hex digits")

	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		var cfg *config.Config
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("base") {
			switch base {
			case 2, 8, 10, 16:
				cfg.Output.Base = base
			default:
				return nil, fmt.Errorf("unsupported base %d", base)
			}
		}
		if cmd.Flags().Changed("uppercase") {
			cfg.Output.Uppercase = uppercase
		}
		return cfg, nil
	}

	evalCmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate one or more expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ev := calc.NewEvaluator()
			ev.MaxPowExponent = cfg.Limits.MaxPowExponent
			for _, expr := range args {
				v, err := ev.Evaluate(expr)
				if err != nil {
					return err
				}
				text, err := renderValue(v, cfg)
				if err != nil {
					return err
				}
				fmt.Println(text)
			}
			return nil
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Show a value in bases 2, 8, 10 and 16",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			v, rest, err := bigint.Parse(args[0])
			if err != nil {
				return err
			}
			if rest != "" {
				return fmt.Errorf("value %q has an unused fractional part %q", args[0], rest)
			}
			for _, b := range []int{2, 8, 10, 16} {
				text, err := v.Text(b)
				if err != nil {
					return err
				}
				if cfg.Output.Uppercase && b == 16 {
					text = upperHex(text)
				}
				fmt.Printf("base %2d: %s\n", b, text)
			}
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return repl.New(cfg).Run()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bigcalc %s\n", Version)
			if Commit != "unknown" {
				fmt.Printf("Commit: %s\n", Commit)
			}
			if Date != "unknown" {
				fmt.Printf("Built: %s\n", Date)
			}
			fmt.Printf("Digit width: %d bits\n", bigint.DigitBits)
			fmt.Printf("Config: %s\n", config.GetConfigPath())
		},
	}

	rootCmd.AddCommand(evalCmd, convertCmd, replCmd, versionCmd)
	return rootCmd.Execute()
}

func renderValue(v *bigint.Int, cfg *config.Config) (string, error) {
	text, err := v.Text(cfg.Output.Base)
	if err != nil {
		return "", err
	}
	if cfg.Output.Uppercase && cfg.Output.Base == 16 {
		text = upperHex(text)
	}
	return text, nil
}

// upperHex upper-cases the digits of a hex rendering while leaving the
// 0x prefix and sign alone
func upperHex(s string) string {
	prefix := strings.Index(s, "0x")
	if prefix < 0 {
		return strings.ToUpper(s)
	}
	return s[:prefix+2] + strings.ToUpper(s[prefix+2:])
}
