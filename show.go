package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/l10n"
)

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     l10n.T("print the parsed sections and settings in document order"),
	ArgsUsage: "FILE",
	Action:    showAction,
}

func showAction(c *cli.Context) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}
	fmt.Print(renderShow(doc))
	return nil
}
