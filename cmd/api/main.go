package main

import (
	"fmt"
	"io"
	"linked-list/internal/platform"
	errors "linked-list/internal/platform/error"
	"linked-list/internal/platform/helper"
	"os"

	perrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func run(ctx *cli.Context) error {
	if err := helper.SetLevel(ctx.String("log-level")); err != nil {
		return perrors.Wrap(err, "log level")
	}

	values := ctx.StringSlice("value")
	if len(values) == 0 {
		values = []string{"10", "20"}
	}

	target := ctx.String("search")
	if target == "" {
		target = values[0]
	}

	return demo(ctx.App.Writer, values, target)
}

func demo(w io.Writer, values []string, target string) error {
	list := platform.NewLinkedList[string]()
	for _, val := range values {
		list.InsertAtHead(val)
	}

	fmt.Fprintln(w, list)
	fmt.Fprintln(w, list.Search(target))

	removed, err := list.DeleteAtHead()
	if err != nil {
		return perrors.Wrap(err, "demo")
	}

	fmt.Fprintln(w, removed)
	fmt.Fprintln(w, list)
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "linked-list"
	app.Usage = "Demonstrate a singly linked list"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level,l",
			Usage:  "Log level (trace, debug, info, warn, error)",
			Value:  "info",
			EnvVar: "LINKEDLIST_LOG_LEVEL",
		},
		cli.StringSliceFlag{
			Name:  "value,i",
			Usage: "Value to insert at the head; may be given more than once",
		},
		cli.StringFlag{
			Name:  "search,s",
			Usage: "Value to search for (default: first inserted value)",
		},
	}
	app.Action = run
	return app
}

func main() {
	// Logs go to stderr so they never mix with the demo output.
	helper.SetOutput(os.Stderr)

	if err := newApp().Run(os.Args); err != nil {
		if helper.Log.IsLevelEnabled(logrus.DebugLevel) {
			err = errors.WithStack(err)
		}
		helper.Log.Error(err)
		os.Exit(1)
	}
}
