package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/l10n"
	"github.com/envmatrix/mcfg/internal/matrix"
)

var depsCommand = &cli.Command{
	Name:      "deps",
	Usage:     l10n.T("list the dependency specifiers environments declare"),
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: l10n.T("limit the listing to environment `NAME`"),
		},
	},
	Action: depsAction,
}

func depsAction(c *cli.Context) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}

	m, err := matrix.FromDocument(doc, matrixOptions(c))
	if err != nil {
		return cli.Exit(err, 1)
	}

	names := m.EnvNames
	if c.IsSet("env") {
		name := c.String("env")
		// A named environment that resolves to nothing is a hard error,
		// unlike the lenient listing across all environments.
		if _, ok := m.Env(name); !ok {
			return cli.Exit(l10n.T("unknown environment %q", name), 1)
		}
		names = []string{name}
	}

	for _, name := range names {
		env, ok := m.Env(name)
		if !ok {
			continue
		}
		for _, spec := range env.Deps {
			printDependency(name, spec)
		}
	}
	return nil
}

func printDependency(env string, spec matrix.DependencySpec) {
	if spec.Constraint == "" {
		fmt.Printf("%s\t%s\n", env, spec.Name)
		return
	}
	fmt.Printf("%s\t%s\t%s\n", env, spec.Name, spec.Constraint)
}
