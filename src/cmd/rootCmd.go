package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/simivar/thol-objects-exporter/src/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ObjectsPath string

	cfgFile           string
	debugMode         bool
	humanReadableLogs bool
)

var rootCmd = &cobra.Command{
	Short: "THOL Objects Exporter extracts sprite usage data from THOL object definition files",
	Long: `THOL Objects Exporter reads the game's objects directory and emits a JSON
				array describing each object and the sprites it references.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Show help by default when no subcommand is provided
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initDebugMode)
	cobra.OnInitialize(initHumanOutput)
	cobra.OnInitialize(initPathsFromViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.toe.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&humanReadableLogs, "human", false, "enable human readable mode")
	rootCmd.PersistentFlags().StringVarP(&ObjectsPath, "objects", "d", defaultObjectsPath(), "path to the THOL objects directory")

	// Bind persistent flags to Viper keys
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("human", rootCmd.PersistentFlags().Lookup("human"))
	_ = viper.BindPFlag("objects", rootCmd.PersistentFlags().Lookup("objects"))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".toe" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".toe")
	}

	viper.SetEnvPrefix("TOE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		log.Info().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initDebugMode() {
	if viper.GetBool("debug") || debugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initHumanOutput() {
	if viper.GetBool("human") || humanReadableLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func initPathsFromViper() {
	// Sync our derived variables from Viper so config/env are respected
	if v := viper.GetString("objects"); v != "" {
		ObjectsPath = app.ExpandPath(v)
	}
}

// resolveObjectsDir prefers the positional argument over the flag, env
// and config values already synced into ObjectsPath.
func resolveObjectsDir(args []string) string {
	if len(args) > 0 {
		return app.SanitizeObjectsDir(app.ExpandPath(args[0]))
	}
	return app.SanitizeObjectsDir(ObjectsPath)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultObjectsPath() string {
	switch runtime.GOOS {
	case "darwin":
		// macOS default path
		return app.ExpandPath(
			"~/Library/Application Support/TwoHoursOneLife/objects",
		)
	case "windows":
		// Windows default path (example)
		return app.ExpandPath(
			"~/AppData/Roaming/TwoHoursOneLife/objects",
		)
	case "linux":
		// Linux default path
		return app.ExpandPath(
			"~/.local/share/TwoHoursOneLife/objects",
		)
	default:
		panic(fmt.Sprintf("unsupported OS: %s", runtime.GOOS))
	}
}
