package main

import (
	"fmt"
	"os"
	"runtime"

	log "chiproll/logger"
)

var version = "devel"

// SDL wants the video loop on the process's initial thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cli := parseArgs(os.Args[1:])
	log.EnableModules(log.ModuleMask(cli.Log))

	cfg := loadConfigOrDefault()

	switch cli.mode {
	case versionMode:
		fmt.Println("chiproll", version)
	case viewMode:
		checkf(runView(cli.View, cfg), "view")
	case analyzeMode:
		checkf(runAnalyze(cli.Analyze), "analyze")
	case demoMode:
		checkf(runDemo(cli.Demo, cfg), "demo")
	}
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
