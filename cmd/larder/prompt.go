// Interactive confirmation prompt for destructive operations.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptConfirm asks a two-choice overwrite question on the given streams
// and loops until the answer is recognisable. It satisfies
// types.ConfirmFunc when bound to concrete streams via confirmFromTerminal.
func promptConfirm(in io.Reader, out io.Writer, entity, entityKind string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "WARNING: %s %q exists and will be overwritten.\n", entityKind, entity)
	for {
		fmt.Fprint(out, "Overwrite? (y/n): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// Input exhausted; treat as a decline.
			fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Fprintf(out, "unrecognised choice %q\n", strings.TrimSpace(line))
	}
}
