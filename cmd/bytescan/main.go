package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tommy351/bytecursor-go/internal/convert"
)

// nolint: gochecknoglobals
var (
	targetFlag   string
	outputFormat string
	streamMode   bool
	verbose      bool

	rootCmd = &cobra.Command{
		Use:  "bytescan [path...]",
		Args: cobra.ArbitraryArgs,
		Example: formatExamples([][]string{
			{"Count newlines in a file.", `bytescan --byte '\n' path/to/file`},
			{"Count a byte given in hex across several files.", "bytescan -b 0x6c *.txt"},
			{"Read from stdin.", "cat file | bytescan -b l"},
		}),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetLevel(logrus.WarnLevel)

			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			if targetFlag == "" {
				// nolint: goerr113
				return errors.New("missing target byte, pass one with --byte")
			}

			target, err := convert.Byte(targetFlag)

			if err != nil {
				return err
			}

			writer := bufio.NewWriter(os.Stdout)
			defer writer.Flush()

			var printer Printer

			switch outputFormat {
			case "text":
				printer = NewTextPrinter(writer)
			case "json":
				printer = NewJSONPrinter(writer)
			default:
				// nolint: goerr113
				return fmt.Errorf("unsupported format %q", outputFormat)
			}

			results, err := scanAll(args, target)

			if err != nil {
				return err
			}

			return printResults(printer, results)
		},
	}
)

func formatExamples(examples [][]string) string {
	lines := make([]string, len(examples))
	indent := "  "

	for i, v := range examples {
		lines[i] = indent + "# " + v[0] + "\n" + indent + v[1]
	}

	return strings.Join(lines, "\n\n")
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&targetFlag, "byte", "b", "", "byte to count (a character, escape sequence, hex or decimal number)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text or json)")
	rootCmd.PersistentFlags().BoolVar(&streamMode, "stream", false, "scan files without loading them into memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scan details")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printResults(printer Printer, results []*Result) error {
	if err := printer.Start(); err != nil {
		return err
	}

	for _, result := range results {
		if err := printer.Result(result); err != nil {
			return err
		}
	}

	return printer.End()
}
