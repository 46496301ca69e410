package main

import (
	"context"
	"log"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v3"
)

const (
	cpuProfileKey = "cpuprofile"
	widthKey      = "width"
	heightKey     = "height"
	itersKey      = "iters"
	configKey     = "config"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark cell propagation and collection streams",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Time Set on a root cell observed through width x height map chains",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  widthKey,
						Usage: "Largest number of chains, grown in powers of ten",
						Value: 1_000,
					},
					&cli.UintFlag{
						Name:  heightKey,
						Usage: "Largest chain length, grown in powers of ten",
						Value: 1_000,
					},
					&cli.UintFlag{
						Name:  itersKey,
						Usage: "Writes per grid point",
						Value: 100,
					},
				},
				Action: profiled(propagate),
			},
			{
				Name:  "collections",
				Usage: "Drive CellArray edits through Indexed and Filter",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  configKey,
						Usage: "YAML scenario file, built-in scenarios when empty",
					},
				},
				Action: profiled(collections),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// profiled runs action under a CPU profile when --cpuprofile is set.
func profiled(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		path := cmd.String(cpuProfileKey)
		if path == "" {
			return action(ctx, cmd)
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
		return action(ctx, cmd)
	}
}
