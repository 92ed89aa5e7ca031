// Package main provides a server that computes Delaunay triangulations of
// stored point sets over HTTP.
package main

import (
	"context"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"go.viam.com/triangulate/web"
)

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

var logger = golog.NewDevelopmentLogger("triangulate_server")

// Arguments for the command.
type Arguments struct {
	Port       utils.NetPortFlag `flag:"port,usage=port to listen on"`
	Store      string            `flag:"store,usage=base URL of the point set store"`
	WebProfile bool              `flag:"webprofile,usage=include profiler in http server"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	options := web.NewOptions()
	if argsParsed.Port != 0 {
		options.Port = int(argsParsed.Port)
	}
	if argsParsed.Store != "" {
		options.StoreURL = argsParsed.Store
	}
	options.Pprof = argsParsed.WebProfile

	return web.RunServer(ctx, options, logger)
}
