package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-eagle/internal/cli"
	"github.com/MKhiriev/go-eagle/models"
	"github.com/charmbracelet/fang"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := fang.Execute(
		context.Background(),
		cli.NewRootCmd(),
		fang.WithVersion(build.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
