package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ArnaudCalmettes/png2grid/grid"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the command line and exits with a non-zero status on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	policy := grid.DefaultOptions().Policy
	format := grid.JSON

	cmd := &cobra.Command{
		Use:   "png2grid <image> <grid_size_px>",
		Short: "Convert an image into a Game of Life seed grid",
		Long: `Sample an image in square cells of <grid_size_px> pixels and print a
grid of 0 (light cell) and 1 (dark cell) values, one row per line of cells.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, v, args)
		},
	}

	// A negative grid size such as "-2" is parsed as a shorthand flag, so flag
	// errors get the same treatment as bad arguments.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, &grid.InvalidArgumentError{Name: "command line", Reason: err.Error()})
	})

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.png2grid.yaml)")
	flags.VarP(&policy, "policy", "p", "sampling policy (single_pixel or area_average)")
	flags.VarP(&format, "format", "f", "output format (json or yaml)")
	flags.BoolP("summary", "s", false, "log a summary of the grid to stderr")

	for _, key := range []string{"policy", "format", "summary"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
	return cmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".png2grid" (without extension).
		v.AddConfigPath(home)
		v.SetConfigName(".png2grid")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("P2G")
	v.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := v.ReadInConfig()
	if err == nil {
		log.Println("Using config file:", v.ConfigFileUsed())
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("couldn't read config: %w", err)
}
