package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/iwat/caesarfile/internal/domain"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
	formatPlain outputFormat = "plain"
)

var outputFormats = []outputFormat{formatTable, formatJSON, formatYAML, formatPlain}

func knownFormats() string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(s string) error {
	for _, known := range outputFormats {
		if strings.EqualFold(s, string(known)) {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q, expected one of [%s]", s, knownFormats())
}

func (f *outputFormat) Type() string {
	return "format"
}

func writeRuns(w io.Writer, format outputFormat, runs []*domain.Run) error {
	if runs == nil {
		runs = []*domain.Run{}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return err
		}
		return enc.Close()
	case formatPlain:
		for _, r := range runs {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil
	}

	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODE\tSHIFT\tINPUT\tOUTPUT\tBYTES\tSTATUS\tFINISHED\tERROR")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			r.ID, r.Mode, r.Shift, r.InputPath, r.OutputPath, r.BytesProcessed,
			r.Status, r.FinishedAt.Local().Format(time.DateTime), r.Error)
	}
	return tw.Flush()
}
