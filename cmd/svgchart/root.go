package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "svgchart <command>",
		Short:         "Render time series line charts",
		Long:          `Render a multi-series time series line chart from delimited or spreadsheet data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	v.BindPFlag("logLevel", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newRenderCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
