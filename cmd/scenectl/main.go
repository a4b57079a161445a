/*
Command scenectl inspects scene descriptions and traces how signals travel
through them.

	scenectl dump [-kinds] FILE
	scenectl trigger -event NAME [-at PATH] [-children-only] [-stop-at PATH] FILE

Environment:

	SCENECTL_TRACE_LEVEL   error | info | debug (default error)
	SCENECTL_NO_COLOR      disable colored output
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/scott-cotton/cli"
)

// tracer traces with key 'geoscene.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("geoscene.cmd")
}

const usageText = `scenectl - inspect scene descriptions

Usage:
  scenectl dump [-kinds] FILE                      Print the tree of scene objects
  scenectl trigger -event NAME [-at PATH] FILE     Trigger a signal and list the objects reached

Objects are addressed by slash-separated paths of names, e.g. map/weather/grid.
FILE may be "-" to read from stdin.`

func main() {
	envCfg, err := loadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	envCfg.apply()
	cli.MainContext(context.Background(), mainCommand())
}

func mainCommand() *cli.Command {
	return cli.NewCommand("scenectl").
		WithSynopsis("scenectl - inspect scene descriptions").
		WithDescription(usageText).
		WithSubs(
			dumpCommand(),
			triggerCommand(),
		)
}
