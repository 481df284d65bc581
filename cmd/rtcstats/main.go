// Command rtcstats prints or exports WebRTC statistics reports.
//
//	rtcstats dump --source loopback --format table
//	rtcstats dump --source fixture --fixture connected.yaml --type inbound-rtp
//	rtcstats serve --config rtcstats.yaml
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/internal/conf"
)

var version = "v0.0.0"

var cli struct {
	Config   string           `help:"path to a config file" short:"c" type:"path"`
	LogLevel string           `help:"overrides log_level from the config"`
	Version  kong.VersionFlag `help:"print version"`

	Dump  dumpCmd  `cmd:"" help:"print one statistics report"`
	Serve serveCmd `cmd:"" help:"export statistics on an HTTP endpoint for Prometheus"`
}

// env is bound into every command's Run.
type env struct {
	conf   *conf.Config
	logger *zap.Logger
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("rtcstats"),
		kong.Description("WebRTC statistics reports "+version),
		kong.UsageOnError(),
		kong.Vars{"version": version})

	c, err := conf.Load(cli.Config, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %s\n", err)
		os.Exit(1)
	}
	if cli.LogLevel != "" {
		c.LogLevel = cli.LogLevel
	}
	logger, err := c.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %s\n", err)
		os.Exit(1)
	}

	err = runLogged(ctx.Command(), func(e *env) error { return ctx.Run(e) }, &env{conf: c, logger: logger})
	ctx.FatalIfErrorf(err)
}

// runLogged runs a command and flushes the logger before main can exit.
func runLogged(command string, run func(*env) error, e *env) error {
	err := run(e)
	if err != nil {
		e.logger.Error("command failed", zap.String("command", command), zap.Error(err))
	}
	_ = e.logger.Sync()
	return err
}
