package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/geoscene/scene"
	"github.com/npillmayer/geoscene/scenefile"
	"github.com/scott-cotton/cli"
)

type triggerConfig struct {
	*cli.Command
	Event        string `cli:"name=event aliases=e desc='name of the signal to trigger (required)'"`
	At           string `cli:"name=at desc='path of the object to trigger the signal on (default: root)'"`
	ChildrenOnly bool   `cli:"name=children-only desc='restrict the signal to the object and its descendants'"`
	StopAt       string `cli:"name=stop-at desc='path of an object which stops propagation'"`
}

func triggerCommand() *cli.Command {
	cfg := &triggerConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "trigger").
		WithSynopsis("trigger -event NAME [-at PATH] [-children-only] [-stop-at PATH] FILE - trace a signal").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *triggerConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: trigger requires one argument, a scene file", cli.ErrUsage)
	}
	if cfg.Event == "" {
		return fmt.Errorf("%w: signal name must not be empty", cli.ErrUsage)
	}
	root, err := scenefile.LoadFile(args[0])
	if err != nil {
		return err
	}
	visits, err := traceDispatch(root, traceOptions{
		event:        cfg.Event,
		at:           cfg.At,
		stopAt:       cfg.StopAt,
		childrenOnly: cfg.ChildrenOnly,
	})
	if err != nil {
		return err
	}
	printVisits(cc.Out, cfg.Event, visits)
	return nil
}

type traceOptions struct {
	event        string
	at           string
	stopAt       string
	childrenOnly bool
}

// visit records a scene object reached by a signal.
type visit struct {
	path    string
	origin  bool // the signal has been triggered here
	stopped bool // propagation stopped here
}

// traceDispatch listens to opts.event on every object of the tree, triggers the
// signal and reports the objects reached, in order.
func traceDispatch(root *scenefile.Node, opts traceOptions) ([]visit, error) {
	origin, err := scenefile.Lookup(root, opts.at)
	if err != nil {
		return nil, err
	}
	var stopAt *scenefile.Node
	if opts.stopAt != "" {
		if stopAt, err = scenefile.Lookup(root, opts.stopAt); err != nil {
			return nil, err
		}
	}
	var visits []visit
	record := func(evt *scene.Event[scenefile.Info]) error {
		v := visit{
			path:   scenefile.PathOf(evt.Current),
			origin: evt.Current == evt.TriggeredBy,
		}
		if evt.Current == stopAt {
			evt.StopPropagation = true
			v.stopped = true
		}
		visits = append(visits, v)
		return nil
	}
	var subs []*scene.Subscription[scenefile.Info]
	root.Walk(func(n *scenefile.Node, _ int) bool {
		subs = append(subs, n.On(opts.event, record))
		return true
	})
	defer func() {
		for _, sub := range subs {
			sub.Cancel()
		}
	}()
	tracer().Debugf("scenectl: triggering %q at %s", opts.event, scenefile.PathOf(origin))
	if err := origin.Trigger(opts.event, nil, opts.childrenOnly); err != nil {
		return visits, err
	}
	return visits, nil
}

func printVisits(w io.Writer, event string, visits []visit) {
	originColor := color.New(color.FgYellow, color.Bold).SprintFunc()
	pathColor := color.New(color.FgGreen).SprintFunc()
	stopColor := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(w, "signal %q reached %d objects\n", event, len(visits))
	for i, v := range visits {
		line := pathColor(v.path)
		if v.origin {
			line = originColor(v.path) + " (origin)"
		}
		if v.stopped {
			line += " " + stopColor("[stopped propagation]")
		}
		fmt.Fprintf(w, "%3d  %s\n", i+1, line)
	}
}
