package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/tricore/cmd/disasm"
	"github.com/Manu343726/tricore/cmd/tools"
	"github.com/Manu343726/tricore/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var closeLog = func() error { return nil }

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tricore",
	Short: "A disassembler for Infineon TriCore machine code",
	Long: `tricore decodes TriCore (AURIX) machine code: mixed 16 and 32 bit little endian
instructions, as found in ELF files or raw flash images.

Settings can be given as flags, as TRICORE_* environment variables, or in a
config file ($HOME/.tricore.yaml by default). Supported keys:

  address    load address of raw images (default 0x80000000)
  format     listing format: text, yaml or dump
  color      colored output: auto, always or never
  log.level  console log level: debug, info, warn or error
  log.file   if set, all log records are appended to this file as JSON lines`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closeFn, err := logging.Setup(logging.Options{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		})
		if err != nil {
			return err
		}

		closeLog = closeFn
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, disasm.DisasmCmd, disasm.DecodeCmd, disasm.ViewCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tricore.yaml)")
	RootCmd.PersistentFlags().String("log-level", "warn", "Console log level: debug, info, warn or error")
	RootCmd.PersistentFlags().String("log-file", "", "Append all log records to this file as JSON lines")
	RootCmd.PersistentFlags().String("color", "auto", "Colored output: auto, always or never")

	cobra.CheckErr(viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag("color", RootCmd.PersistentFlags().Lookup("color")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tricore" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tricore")
	}

	viper.SetEnvPrefix("tricore")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")) // log.level -> TRICORE_LOG_LEVEL
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
