package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/seatable-init/models"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprint(w, info.String())
}
