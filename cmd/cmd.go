package cmd

import (
	"fmt"
	"github.com/WorldSEnder/virtlist/internal"
	"github.com/WorldSEnder/virtlist/internal/constants"
	"github.com/WorldSEnder/virtlist/internal/keymap"
	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/WorldSEnder/virtlist/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isInt, defaultIfBool                        bool
	defaultIfInt                                        int
}

var (
	rootNameToArg = map[string]arg{
		"help": {
			description: `Print usage`,
		},
		"item-count": {
			cliShort:      "n",
			cfgFileEnvVar: "item-count",
			description:   `Total number of items in the demo list`,
			isInt:         true,
			defaultIfInt:  10000,
		},
		"height-prior": {
			cliShort:      "p",
			cfgFileEnvVar: "height-prior",
			description:   `Estimated height in rows for items not yet measured`,
			isInt:         true,
			defaultIfInt:  constants.DefaultHeightPrior,
		},
		"scroll-delay": {
			cliShort:      "",
			cfgFileEnvVar: "scroll-delay",
			description:   `Scroll sampling delay in milliseconds`,
			isInt:         true,
			defaultIfInt:  constants.DefaultScrollSampleMillis,
		},
		"save-path": {
			cliShort:      "",
			cfgFileEnvVar: "save-path",
			description:   `File path to save the visible lines to. Defaults to a timestamped file in the working directory`,
		},
	}

	description = fmt.Sprintf(`virtlist %s

virtlist is a virtualized, variable-height list engine for terminal UIs,
with a demo application scrolling a large generated list

Home page: https://github.com/WorldSEnder/virtlist`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "virtlist",
		Short: "virtlist: virtualized list demo",
		Long:  description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		Run:     mainEntrypoint,
		Version: getVersion(),
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"item-count",
		"height-prior",
		"scroll-delay",
		"save-path",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			rootCmd.PersistentFlags().BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else if c.isInt {
			rootCmd.PersistentFlags().IntP(cliLong, c.cliShort, c.defaultIfInt, c.description)
		} else {
			rootCmd.PersistentFlags().StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
		_ = viper.BindPFlag(cliLong, rootCmd.PersistentFlags().Lookup(c.cfgFileEnvVar))
	}
	rootCmd.SetVersionTemplate(`{{printf "virtlist %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show virtlist version")
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	// bind viper to env vars
	viper.SetEnvPrefix("virtlist")
	viper.AutomaticEnv()

	bindFlags(cmd, nameToArg)
	return nil
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) {
	v := viper.GetViper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		cliLong := f.Name
		viperName := nameToArg[cliLong].cfgFileEnvVar

		// Apply the viper config value to the flag when the flag is not manually specified
		// and viper has a value from the config file or env var
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			err := cmd.Flags().Set(cliLong, fmt.Sprintf("%v", val))
			if err != nil {
				fmt.Printf("error setting flag %s: %v\n", cliLong, err)
				os.Exit(1)
			}
		}
	})
}

func mainEntrypoint(cmd *cobra.Command, _ []string) {
	initialModel, options := setup(cmd)
	program := tea.NewProgram(initialModel, options...)

	if _, err := program.Run(); err != nil {
		fmt.Printf("error on virtlist startup: %v", err)
		os.Exit(1)
	}
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func getItemCount(cmd *cobra.Command) int {
	count, err := cmd.Flags().GetInt("item-count")
	if err != nil {
		fmt.Printf("error parsing item-count: %v\n", err)
		os.Exit(1)
	}
	if count < 0 {
		fmt.Println("error: item-count must be non-negative")
		os.Exit(1)
	}
	return count
}

func getHeightPrior(cmd *cobra.Command) int {
	prior, err := cmd.Flags().GetInt("height-prior")
	if err != nil {
		fmt.Printf("error parsing height-prior: %v\n", err)
		os.Exit(1)
	}
	if prior <= 0 {
		fmt.Println("error: height-prior must be positive")
		os.Exit(1)
	}
	return prior
}

func getScrollDelayMillis(cmd *cobra.Command) int {
	millis, err := cmd.Flags().GetInt("scroll-delay")
	if err != nil {
		fmt.Printf("error parsing scroll-delay: %v\n", err)
		os.Exit(1)
	}
	if millis < 0 {
		fmt.Println("error: scroll-delay must be non-negative")
		os.Exit(1)
	}
	return millis
}

func getSavePath(cmd *cobra.Command) string {
	return cmd.Flags().Lookup("save-path").Value.String()
}

func getConfig(cmd *cobra.Command) internal.Config {
	return internal.Config{
		KeyMap:            keymap.DefaultKeyMap(),
		ItemCount:         getItemCount(cmd),
		HeightPrior:       getHeightPrior(cmd),
		ScrollDelayMillis: getScrollDelayMillis(cmd),
		SavePath:          getSavePath(cmd),
		Version:           getVersion(),
	}
}

func setup(cmd *cobra.Command) (internal.Model, []tea.ProgramOption) {
	initialModel := internal.InitialModel(getConfig(cmd))
	return initialModel, []tea.ProgramOption{tea.WithAltScreen()}
}
