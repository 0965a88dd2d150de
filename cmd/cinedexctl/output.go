// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// render writes v in the format selected by --output. The table callback
// fills a go-pretty writer and is only invoked for the table format.
func render(cmd *cobra.Command, v any, fill func(tw table.Writer)) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()

	switch format {
	case formatJSON:
		return printJSON(out, v)
	case formatYAML:
		return printYAML(out, v)
	case formatTable, "":
		tw := table.NewWriter()
		tw.SetOutputMirror(out)
		fill(tw)
		tw.Render()
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
