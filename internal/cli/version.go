package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoBackend: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := map[string]string{
				"version": orNA(a.buildInfo.BuildVersion()),
				"date":    orNA(a.buildInfo.BuildDate()),
				"commit":  orNA(a.buildInfo.BuildCommit()),
			}
			return a.show(info, func() {
				fmt.Fprintf(a.out, "Build version: %s\n", info["version"])
				fmt.Fprintf(a.out, "Build date: %s\n", info["date"])
				fmt.Fprintf(a.out, "Build commit: %s\n", info["commit"])
			})
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
