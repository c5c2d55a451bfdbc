// Command hashpath parses hash paths and prints each result as JSON.
//
//	hashpath [-pretty] [path ...]
//
// With no arguments, each line of standard input is parsed.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tubular-ci/tubular-web/pkg/hashpath"
)

func main() {
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	flag.Parse()

	if err := run(flag.Args(), os.Stdin, os.Stdout, *pretty); err != nil {
		log.Fatalf("hashpath: %v", err)
	}
}

func run(args []string, in io.Reader, out io.Writer, pretty bool) error {
	enc := json.NewEncoder(out)
	if pretty {
		enc.SetIndent("", "  ")
	}

	emit := func(path string) error {
		if err := enc.Encode(hashpath.ParseLocation(path)); err != nil {
			return fmt.Errorf("encode %q: %w", path, err)
		}
		return nil
	}

	if len(args) > 0 {
		for _, path := range args {
			if err := emit(path); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
