package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/ArnaudCalmettes/png2grid/grid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// convert samples the image given as first argument and prints the grid.
// Nothing is written to the output until the whole grid is computed.
func convert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return usageError(cmd, &grid.InvalidArgumentError{
			Name:   "arguments",
			Value:  strings.Join(args, " "),
			Reason: "expected <image> <grid_size_px>",
		})
	}

	size, err := grid.ParseCellSize(args[1])
	if err != nil {
		return usageError(cmd, err)
	}
	policy, err := grid.ParsePolicy(v.GetString("policy"))
	if err != nil {
		return usageError(cmd, err)
	}
	format, err := grid.ParseFormat(v.GetString("format"))
	if err != nil {
		return usageError(cmd, err)
	}

	sampler, err := grid.NewSampler(grid.Options{Policy: policy})
	if err != nil {
		return err
	}
	g, err := sampler.Sample(args[0], size)
	if err != nil {
		return err
	}

	if v.GetBool("summary") {
		log.Printf("%s: %v (%s, %dpx cells)", args[0], grid.Summarize(g), policy, size)
	}
	return grid.Encode(cmd.OutOrStdout(), g, format)
}

// usageError prints the command usage to the output stream and passes err
// through.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	return err
}
