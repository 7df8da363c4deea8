package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	laptopprice "github.com/kailas-cloud/laptopprice/pkg/sdk"
)

func predictCommand() *cobra.Command {
	var (
		spec   laptopprice.Spec
		symbol string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "predict ARTIFACT",
		Short: "Estimate the price of one laptop",
		Long:  "Unset flags take the form defaults. Valid values are those of the HTML form.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := laptopprice.New(
				laptopprice.WithModelFile(args[0]),
				laptopprice.WithCurrencySymbol(symbol),
			)
			if err != nil {
				return err
			}

			est, err := client.Estimate(cmd.Context(), spec)
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(est)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Predicted Price: %s\n", est.Formatted)
			return nil
		},
	}

	d := laptopprice.Defaults()
	f := cmd.Flags()
	f.StringVar(&spec.Brand, "brand", d.Brand, "manufacturer")
	f.StringVar(&spec.Type, "type", d.Type, "form factor")
	f.StringVar(&spec.OS, "os", d.OS, "operating system")
	f.IntVar(&spec.RAM, "ram", d.RAM, "RAM in GB")
	f.Float64Var(&spec.Weight, "weight", d.Weight, "weight in kg")
	f.StringVar(&spec.CPU, "cpu", d.CPU, "CPU family")
	f.StringVar(&spec.GPU, "gpu", d.GPU, "GPU brand")
	f.Float64Var(&spec.ScreenSize, "screen-size", d.ScreenSize, "diagonal in inches")
	f.StringVar(&spec.Resolution, "resolution", d.Resolution, "screen resolution")
	f.StringVar(&spec.Storage, "storage", d.Storage, "primary storage")
	f.StringVar(&symbol, "currency", "€", "currency symbol")
	f.BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	return cmd
}
