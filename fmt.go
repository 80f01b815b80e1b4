package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/l10n"
)

var fmtCommand = &cli.Command{
	Name:      "fmt",
	Usage:     l10n.T("rewrite a document in its canonical form"),
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "write",
			Usage: l10n.T("rewrite the file in place instead of printing to stdout"),
		},
	},
	Action: fmtAction,
}

func fmtAction(c *cli.Context) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}
	out := doc.String()

	if !c.Bool("write") {
		fmt.Print(out)
		return nil
	}

	path := c.Args().First()
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(out), mode); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
