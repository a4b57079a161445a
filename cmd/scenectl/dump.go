package main

import (
	"fmt"

	"github.com/npillmayer/geoscene/scene"
	"github.com/npillmayer/geoscene/scenefile"
	"github.com/scott-cotton/cli"
)

type dumpConfig struct {
	*cli.Command
	Kinds bool `cli:"name=kinds aliases=k desc='show the kind of every object'"`
}

func dumpCommand() *cli.Command {
	cfg := &dumpConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "dump").
		WithSynopsis("dump [-kinds] FILE - print the tree of scene objects").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *dumpConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires one argument, a scene file", cli.ErrUsage)
	}
	root, err := scenefile.LoadFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, dumpScene(root, cfg.Kinds))
	return nil
}

func dumpScene(root *scenefile.Node, kinds bool) string {
	return scene.Dump(root, func(n *scenefile.Node) string {
		if kinds {
			return n.Payload.String()
		}
		return n.Payload.Name
	})
}
