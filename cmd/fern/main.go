package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fern-lang/fern/pkg/runtime"
	"github.com/fern-lang/fern/pkg/runtime/image"
	"github.com/fern-lang/fern/pkg/script"
	"github.com/urfave/cli/v3"
)

func loadConfig(c *cli.Command) (runtime.Config, error) {
	path := c.String("config")
	if path == "" {
		if _, err := os.Stat("fern.toml"); err != nil {
			return runtime.DefaultConfig(), nil
		}
		path = "fern.toml"
	}

	return runtime.LoadConfig(path)
}

func runScript(logger *slog.Logger, heap *runtime.Heap, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	prog, err := script.Parse(path, f)
	if err != nil {
		return err
	}

	return script.NewExecutor(logger, heap).Run(prog)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to a fern.toml runtime configuration",
	}

	debugFlag := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
	}

	cmd := &cli.Command{
		Name:  "fern",
		Usage: "The Fern value runtime",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Execute a runtime op script",
				Flags: []cli.Flag{configFlag, debugFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide a script file as argument")
					}

					config, err := loadConfig(c)
					if err != nil {
						return err
					}

					logger := slog.Default()

					debug := config.Heap.Debug || c.Bool("debug")
					heap := runtime.NewHeap(logger, runtime.DefaultFuncs(), config.Heap.Capacity, os.Stdout, debug)

					return runScript(logger, heap, c.Args().First())
				},
			},
			{
				Name:  "snapshot",
				Usage: "Execute a runtime op script and write a heap image",
				Flags: []cli.Flag{
					configFlag,
					debugFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "heap.img",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide a script file as argument")
					}

					config, err := loadConfig(c)
					if err != nil {
						return err
					}

					logger := slog.Default()

					debug := config.Heap.Debug || c.Bool("debug")
					heap := runtime.NewHeap(logger, runtime.DefaultFuncs(), config.Heap.Capacity, os.Stdout, debug)

					err = runScript(logger, heap, c.Args().First())
					if err != nil {
						return err
					}

					img, err := image.Snapshot(heap)
					if err != nil {
						return err
					}

					data, err := image.Marshal(img)
					if err != nil {
						return err
					}

					return os.WriteFile(c.String("output"), data, 0o644)
				},
			},
			{
				Name:  "inspect",
				Usage: "Decode a heap image and list its values",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide an image file as argument")
					}

					data, err := os.ReadFile(c.Args().First())
					if err != nil {
						return err
					}

					img, err := image.Unmarshal(data)
					if err != nil {
						return err
					}

					for _, val := range img.Values {
						switch runtime.Kind(val.Kind) {
						case runtime.KindInt:
							fmt.Printf("%6d  int      %d\n", val.Ref, val.Int)
						case runtime.KindClosure:
							env := make([]string, len(val.Env))
							for i, entry := range val.Env {
								env[i] = fmt.Sprintf("%d", entry)
							}
							fmt.Printf("%6d  closure  %s [%s]\n", val.Ref, val.Sym, strings.Join(env, " "))
						default:
							fmt.Printf("%6d  invalid\n", val.Ref)
						}
					}

					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}
