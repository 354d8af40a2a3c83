/*
Evaluates a transform rig with the math package and prints the resolved
hierarchy. With -watch the rig is re-evaluated every time the file changes.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/extramath/engine/core"
	"github.com/spaghettifunk/extramath/testbed"
)

func main() {
	rigPath := flag.String("rig", "testbed/testdata/arm.toml", "rig file (.toml, .yaml or .yml)")
	watch := flag.Bool("watch", false, "re-evaluate the rig when the file changes")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error or fatal")
	formatName := flag.String("format", "table", "report format: table, yaml or toml")
	flag.Parse()

	level, err := core.ParseLogLevel(*logLevel)
	if err != nil {
		core.LogFatal("invalid log level %q: %s", *logLevel, err)
	}
	core.SetLogLevel(level)

	format, err := testbed.ParseFormat(*formatName)
	if err != nil {
		core.LogFatal(err.Error())
	}

	core.EventInitialize()
	core.MetricsInitialize()
	defer core.EventShutdown()

	if !*watch {
		report, err := testbed.Run(*rigPath)
		if err != nil {
			core.LogFatal(err.Error())
		}
		if err := report.Write(os.Stdout, format); err != nil {
			core.LogFatal(err.Error())
		}
		return
	}

	core.EventRegister(core.EVENT_CODE_RIG_EVALUATED, nil, func(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
		report, ok := data.Data.(*testbed.Report)
		if !ok {
			return false
		}
		if err := report.Write(os.Stdout, format); err != nil {
			core.LogError(err.Error())
		}
		core.LogInfo("evaluations %d, average %s", core.MetricsCount(), core.MetricsAverage())
		return false
	})
	core.EventRegister(core.EVENT_CODE_RIG_FAILED, nil, func(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
		fmt.Fprintf(os.Stderr, "%s: %s\n", data.Path, data.Err)
		return false
	})

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	w, err := testbed.NewWatcher(*rigPath)
	if err != nil {
		core.LogFatal(err.Error())
	}
	core.LogInfo("watching %s", *rigPath)
	if err := w.Start(ctx); err != nil {
		core.LogFatal(err.Error())
	}
}
