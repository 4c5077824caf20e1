// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
)

type OutputFlags struct {
	JSON bool
}

func (of *OutputFlags) SetFlags(fset *flag.FlagSet) {
	fset.BoolVar(&of.JSON, "json", false, "prints the decoded response as json")
}

// PrintJSON prints v as indented json to w.
func PrintJSON(w io.Writer, v any) error {
	jsdata, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal response to json: %w", err)
	}
	fmt.Fprintf(w, "%s\n", jsdata)
	return nil
}

// NewTable returns a tabwriter for aligned column output. Callers must Flush
// the writer.
func NewTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
}

// Result prints the outcome of a control operation. Returns an error when ok
// is false so that the command exits with non-zero status.
func Result(w io.Writer, ok bool, message, errmsg string) error {
	if !ok {
		if len(errmsg) == 0 {
			errmsg = message
		}
		if len(errmsg) == 0 {
			errmsg = "server rejected the request"
		}
		return errors.New(errmsg)
	}
	if len(message) == 0 {
		message = "OK"
	}
	fmt.Fprintln(w, message)
	return nil
}
