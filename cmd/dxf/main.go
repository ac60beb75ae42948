// Command dxf inspects and round-trips DXF drawings using the public
// codec API.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wmeredith/dxf"
	"github.com/wmeredith/dxf/internal/logging"
	"github.com/wmeredith/dxf/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dxf",
		Short:         "Inspect and round-trip DXF drawings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("codepage", "", "override the drawing's declared codepage")
	root.PersistentFlags().Bool("quiet", false, "suppress parse warnings on stderr")

	viper.SetEnvPrefix("DXF")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("codepage", root.PersistentFlags().Lookup("codepage"))
	_ = viper.BindPFlag("quiet", root.PersistentFlags().Lookup("quiet"))

	root.AddCommand(newInfoCmd(), newHeaderCmd(), newRoundtripCmd())
	return root
}

func loadDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := dxf.ParseOptions{Codepage: viper.GetString("codepage")}
	if !viper.GetBool("quiet") {
		opts.Sink = logging.NewConsoleSink(os.Stderr)
	}

	doc, warnings, err := dxf.ParseBytesWithOptions(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(warnings) > 0 && !viper.GetBool("quiet") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Info().Msgf("%d warning(s) during parse", len(warnings))
	}
	return doc, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print a census of the drawing's sections and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if doc.Header != nil {
				fmt.Fprintf(out, "HEADER:   %d variable(s)\n", len(doc.Header.Variables))
			}
			if doc.Classes != nil {
				fmt.Fprintf(out, "CLASSES:  %d class(es)\n", len(doc.Classes.Classes))
			}
			if doc.Tables != nil {
				var parts []string
				if doc.Tables.Viewports != nil {
					parts = append(parts, fmt.Sprintf("%d viewport(s)", len(doc.Tables.Viewports.Viewports)))
				}
				if doc.Tables.LineTypes != nil {
					parts = append(parts, fmt.Sprintf("%d linetype(s)", len(doc.Tables.LineTypes.LineTypes)))
				}
				if doc.Tables.Layers != nil {
					parts = append(parts, fmt.Sprintf("%d layer(s)", len(doc.Tables.Layers.Layers)))
				}
				fmt.Fprintf(out, "TABLES:   %s\n", strings.Join(parts, ", "))
			}
			if doc.Blocks != nil {
				fmt.Fprintf(out, "BLOCKS:   %d block(s)\n", len(doc.Blocks.Blocks))
			}
			if doc.Entities != nil {
				counts := map[string]int{}
				for _, e := range doc.Entities.Entities {
					counts[e.Kind()]++
				}
				fmt.Fprintf(out, "ENTITIES: %d entit(ies)\n", len(doc.Entities.Entities))
				for kind, n := range counts {
					fmt.Fprintf(out, "  %-12s %d\n", kind, n)
				}
			}
			return nil
		},
	}
}

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header FILE",
		Short: "Print the drawing's header variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if doc.Header == nil {
				return fmt.Errorf("%s has no header section", args[0])
			}

			out := cmd.OutOrStdout()
			for _, v := range doc.Header.Variables {
				if v.Point != nil {
					if v.Point.HasZ {
						fmt.Fprintf(out, "%-20s (%g, %g, %g)\n", v.Name, v.Point.X, v.Point.Y, v.Point.Z)
					} else {
						fmt.Fprintf(out, "%-20s (%g, %g)\n", v.Name, v.Point.X, v.Point.Y)
					}
					continue
				}
				fmt.Fprintf(out, "%-20s %s\n", v.Name, v.Value.Wire())
			}
			return nil
		},
	}
}

func newRoundtripCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "roundtrip FILE",
		Short: "Parse a drawing, serialize it back, and report differences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			out := dxf.SerializeToString(doc)
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			in := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
			if in == out {
				fmt.Fprintln(w, "round trip is byte-identical")
				return nil
			}
			inLines := strings.Split(in, "\n")
			outLines := strings.Split(out, "\n")
			fmt.Fprintf(w, "round trip differs: %d line(s) in, %d line(s) out\n", len(inLines), len(outLines))
			for i := 0; i < len(inLines) && i < len(outLines); i++ {
				if inLines[i] != outLines[i] {
					fmt.Fprintf(w, "first difference at line %d: %q -> %q\n", i+1, inLines[i], outLines[i])
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the serialized drawing to this file")
	return cmd
}
