// Command taguchi drives Taguchi-style fractional-factorial experiments:
// generating a run schedule from a .tgu definition, executing it against
// an external command, and analyzing the resulting CSV measurements for
// main effects and an optimal-level recommendation (§6.6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bigattichouse/taguchi/internal/cli"
)

// Version constants mirror original_source/src/cli/include/taguchi.h's
// TAGUCHI_VERSION_{MAJOR,MINOR,PATCH}.
const (
	versionMajor = 1
	versionMinor = 0
	versionPatch = 0
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-v", "version":
		fmt.Printf("taguchi version %d.%d.%d\n", versionMajor, versionMinor, versionPatch)
		return 0
	case "list-arrays":
		return exitFor(cli.ListArrays(os.Stdout))
	case "generate":
		return cmdGenerate(args[1:])
	case "run":
		return cmdRun(args[1:])
	case "validate":
		return cmdValidate(args[1:])
	case "effects":
		return cmdEffects(args[1:])
	case "analyze":
		return cmdAnalyze(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		return 1
	}
}

func cmdGenerate(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: generate command requires a .tgu file")
		return 1
	}
	return exitFor(cli.Generate(args[0], os.Stdout))
}

func cmdRun(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Error: run command requires a .tgu file and a shell command")
		return 1
	}
	return exitFor(cli.Run(args[0], args[1], os.Stdout))
}

func cmdValidate(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: validate command requires a .tgu file")
		return 1
	}
	return exitFor(cli.Validate(args[0], os.Stdout))
}

func cmdEffects(args []string) int {
	fs := flag.NewFlagSet("effects", flag.ContinueOnError)
	metric := fs.String("metric", "", "metric name for the response column")
	var rest []string
	for {
		if err := fs.Parse(args); err != nil {
			return 1
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		rest = append(rest, args[0])
		args = args[1:]
	}
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "Error: effects command requires a .tgu file and a results.csv file")
		return 1
	}
	return exitFor(cli.Effects(rest[0], rest[1], *metric, os.Stdout))
}

func cmdAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	metric := fs.String("metric", "", "metric name for the response column")
	minimize := fs.Bool("minimize", false, "recommend the level with the lowest mean instead of the highest")
	var rest []string
	for {
		if err := fs.Parse(args); err != nil {
			return 1
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		rest = append(rest, args[0])
		args = args[1:]
	}
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "Error: analyze command requires a .tgu file and a results.csv file")
		return 1
	}
	return exitFor(cli.Analyze(rest[0], rest[1], *metric, *minimize, os.Stdout))
}

func exitFor(err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: taguchi [OPTIONS] <command> [ARGS]

Commands:
  generate <file.tgu>                       Generate experiment runs
  run <file.tgu> <shell command>            Execute experiments with an external command
  analyze <file.tgu> <results.csv>          Analyze experimental results
  effects <file.tgu> <results.csv>          Calculate main effects
  validate <file.tgu>                       Validate an experiment definition
  list-arrays                               List available orthogonal arrays
  --help                                     Show this help message
  --version                                  Show version information

Examples:
  taguchi generate experiment.tgu
  taguchi run experiment.tgu './my_script.sh'
  taguchi analyze experiment.tgu results.csv --metric throughput
`)
}
