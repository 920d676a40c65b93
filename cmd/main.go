package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"people-lab/internal"
	"people-lab/render"
	"people-lab/runtime"
	"people-lab/services"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, roster source and service, then prints one result.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	display, err := internal.LoadDisplay()
	if err != nil {
		return fmt.Errorf("display config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Flags, environment values are the defaults
	flags := flag.NewFlagSet("people", flag.ContinueOnError)
	op := flags.String("op", "", "Operation to apply, see -list")
	length := flags.Int("length", config.DefaultLength, "Keep names strictly longer than this (filter-by-length)")
	step := flags.Int("n", config.DefaultStep, "Keep every nth person, 0 keeps everybody (every-n-person)")
	letter := flags.String("letter", "", "Letter or substring to look for (*-has-letter)")
	file := flags.String("file", config.RosterFilepath, "Roster file, one name per line, stdin when empty")
	list := flags.Bool("list", false, "List the supported operations")
	if err = flags.Parse(args); err != nil {
		return err
	}

	// 3. Roster source & service
	source := runtime.NewReaderRosterSource(stdin)
	if *file != "" {
		source = runtime.NewFileRosterSource(*file)
	}
	svc := services.NewPeopleService(log, source)

	if *list {
		return render.Operations(stdout, svc.Operations())
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Apply & print
	result, err := svc.Apply(ctx, services.Request{
		Operation: services.Operation(*op),
		Length:    *length,
		Step:      *step,
		Letter:    *letter,
	})
	if err != nil {
		return err
	}
	return render.Render(stdout, result, display)
}
