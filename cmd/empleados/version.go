package main

import (
	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
)

// Se rellenan con -ldflags en el build de release.
var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

const (
	appName        = "empleados"
	appDescription = "Gestión de empleados contra la API REST /Empleados"
	appWebsite     = "https://github.com/jhoicas/Empleados-admin"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printLine(cmd.OutOrStdout(), buildVersion().String())
		},
	}
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(appName, appDescription, appWebsite),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
