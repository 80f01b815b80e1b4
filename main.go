package main

import (
	"fmt"
	"os"

	"git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/conf"
	"github.com/envmatrix/mcfg/internal/l10n"
)

func main() {
	app := cli.NewApp()
	app.Name = ShortName
	app.Version = Version
	app.Usage = l10n.T("parse, validate and query environment matrix documents")
	app.EnableBashCompletion = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: l10n.T("read the tool configuration from `FILE` instead of /etc/mcfg/config.toml"),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: l10n.T("set the logging output `LEVEL`"),
		},
	}

	app.Commands = []*cli.Command{
		validateCommand,
		showCommand,
		envsCommand,
		depsCommand,
		exportCommand,
		fmtCommand,
	}

	app.Before = beforeAction
	app.HideHelpCommand = true

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ShortName, err)
		os.Exit(1)
	}
}

// beforeAction resolves the tool configuration and configures logging
// before any command runs.
func beforeAction(c *cli.Context) error {
	config := conf.Configuration
	if c.IsSet("config") {
		cs := &conf.ConfigSource{Path: c.String("config")}
		read, err := cs.Read()
		if err != nil {
			return cli.Exit(err, 1)
		}
		config = read
		conf.Configuration = config
	}

	level := config.LogLevel
	if c.IsSet("log-level") {
		parsed, err := log.ParseLevel(c.String("log-level"))
		if err != nil {
			return cli.Exit(fmt.Sprintf(l10n.T("unknown log level %q"), c.String("log-level")), 1)
		}
		level = parsed
	}
	log.SetLevel(level)
	if level >= log.LevelDebug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	log.Debugf("%v started, log level %v", ShortName, level)
	return nil
}
