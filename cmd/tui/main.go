package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/td0m/tasklist/internal/config"
	"github.com/td0m/tasklist/internal/logging"
	"github.com/td0m/tasklist/pkg/task"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	check(err)

	logger, closer, err := logging.New(cfg)
	check(err)
	defer closer.Close()

	a := newApp(cfg, logger, task.NewStore())
	p := tea.NewProgram(a,
		// full terminal mode
		tea.WithAltScreen(),
		// mouse wheel scrolls the task table
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting", "time_format", cfg.TimeFormat)
	_, err = p.Run()
	check(err)
}
