// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/aclements/go-trillium/trillium"
	"github.com/spf13/cobra"
)

func (a *app) augmentCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "augment",
		Short: "add the Location and Max columns and write the data as CSV",
		Args:  cobra.NoArgs,
		Long:  `augment adds the Location column after the metadata columns and the
Max column after the compounds, then writes the data as CSV. The output
can be passed back as --data: Location and Max are recognized by name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFrame()
			if err != nil {
				return err
			}
			if _, err := f.Floats(trillium.MaxColumn); err == nil {
				a.log.Debugf("keeping the existing %s column", trillium.MaxColumn)
			} else if err := f.AddRowMax(); err != nil {
				return err
			}
			if output == "" || output == "-" {
				return f.WriteCSV(cmd.OutOrStdout())
			}

			file, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := f.WriteCSV(file); err != nil {
				file.Close()
				return fmt.Errorf("writing %s: %w", output, err)
			}
			if err := file.Close(); err != nil {
				return err
			}
			a.log.Infof("wrote %d rows to %s", f.Len(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
