package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outKey               = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity Zip functions of package cell",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest arity to generate, starting from 2",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "cell/zip_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for zip started !")
	defer func() {
		log.Printf("Codegen for zip finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 2 {
		return fmt.Errorf("count must be at least 2, got %d", count)
	}
	out := cmd.String(outKey)
	log.Printf("Arity 2..%d into %s", count, out)

	src, err := format.Source([]byte(templates.ZipGen(count)))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	return os.WriteFile(out, src, 0644)
}
