// Package main provides the CLI entrypoint for boilerplate-gen.
//
// boilerplate-gen is a codegen tool that:
//   - Loads the hand-maintained YAML table of Axes method signatures
//   - Reconstructs each signature and its forwarding call expression
//   - Emits one pyplot-level wrapper per command table entry, plus one
//     setter per colormap
//   - Splices the result into pyplot.py after the magic marker line
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v3"

	"boilerplate-generator/internal/api"
	"boilerplate-generator/internal/gen"
)

func main() {
	cmd := &cli.Command{
		Name:  "boilerplate-gen",
		Usage: "Regenerate the autogenerated portion of pyplot.py",
		// Running with no subcommand regenerates the target in place.
		Flags:  genFlags(),
		Action: genAction,
		Commands: []*cli.Command{
			{
				Name:   "gen",
				Usage:  "Generate wrappers and splice them into the target file",
				Flags:  genFlags(),
				Action: genAction,
			},
			{
				Name:   "check",
				Usage:  "Validate the signature table and target marker without writing",
				Flags:  genFlags(),
				Action: checkAction,
			},
			{
				Name:   "dump",
				Usage:  "Print the loaded signature model",
				Flags:  apiFlags(),
				Action: dumpAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func apiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api",
			Aliases: []string{"a"},
			Value:   "axes.yaml",
			Usage:   "Axes signature table",
		},
	}
}

func genFlags() []cli.Flag {
	return append(apiFlags(),
		&cli.StringFlag{
			Name:    "pyplot",
			Aliases: []string{"p"},
			Value:   "examples/pyplot/pyplot.py",
			Usage:   "Target pyplot file",
		},
		&cli.BoolFlag{
			Name:  "stdout",
			Usage: "Print generated text instead of splicing the target",
		},
	)
}

// loadMethods loads and validates the signature table, surfacing warnings
// on stderr and refusing to continue on validation errors.
func loadMethods(cmd *cli.Command) (*api.MethodSet, error) {
	methods, err := api.LoadFile(cmd.String("api"))
	if err != nil {
		return nil, err
	}

	diags := api.Validate(methods)
	for _, w := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}

	if diags.HasErrors() {
		return nil, diags.Error()
	}

	return methods, nil
}

func genAction(ctx context.Context, cmd *cli.Command) error {
	methods, err := loadMethods(cmd)
	if err != nil {
		return err
	}

	out, err := gen.NewGenerator(gen.DefaultConfig(), methods).Generate()
	if err != nil {
		return err
	}

	if cmd.Bool("stdout") {
		_, err := os.Stdout.Write(out)
		return err
	}

	return gen.Splice(cmd.String("pyplot"), out)
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	methods, err := loadMethods(cmd)
	if err != nil {
		return err
	}

	out, err := gen.NewGenerator(gen.DefaultConfig(), methods).Generate()
	if err != nil {
		return err
	}

	target := cmd.String("pyplot")
	if err := gen.CheckMarker(target); err != nil {
		return err
	}

	fmt.Printf("%s: marker present, %d bytes would be generated\n", target, len(out))

	return nil
}

func dumpAction(ctx context.Context, cmd *cli.Command) error {
	methods, err := loadMethods(cmd)
	if err != nil {
		return err
	}

	spew.Dump(methods.Methods)

	return nil
}
