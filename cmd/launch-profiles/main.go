package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"launch-profiles/internal/app"
	"launch-profiles/internal/config"
	"launch-profiles/internal/launcher"
	"launch-profiles/internal/logger"
	"launch-profiles/internal/profile"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Load()

	flags := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	profileFile := flags.String("config", cfg.ProfileFile, "path to the profile document")
	runName := flags.String("run", "", "launch the named profile and exit")
	list := flags.Bool("list", false, "print stored profiles and exit")
	if err := flags.Parse(args); err != nil {
		return exitFailure
	}
	cfg.ProfileFile = *profileFile

	log := logger.NewConsoleLogger(cfg.LogLevel, cfg.JSONLogs)

	switch {
	case *list:
		if err := app.ListProfiles(cfg, os.Stdout); err != nil {
			log.Error("Main", err, nil)
			return exitFailure
		}
		return exitOK

	case *runName != "":
		report, err := app.RunProfile(cfg, log, *runName)
		if errors.Is(err, profile.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "profile %q not found in %s\n", *runName, cfg.ProfileFile)
			return exitNotFound
		}
		if err != nil {
			log.Error("Main", err, nil)
			return exitFailure
		}
		fmt.Fprintf(os.Stdout, "%s: %s\n", *runName, app.DescribeReport(report))
		if report.Count(launcher.Launched) == 0 && len(report.Failures()) > 0 {
			return exitFailure
		}
		return exitOK
	}

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", fmt.Errorf("application initialization failed: %w", err), nil)
		return exitFailure
	}
	if err := application.Run(); err != nil {
		log.Error("Main", fmt.Errorf("application execution failed: %w", err), nil)
		return exitFailure
	}

	log.Info("Main", "application terminated", nil)
	return exitOK
}
