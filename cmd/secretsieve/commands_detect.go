package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/secretsieve/internal/ansi"
	"github.com/suryansh-23/secretsieve/internal/mask"
	"github.com/suryansh-23/secretsieve/internal/types"
	"github.com/suryansh-23/secretsieve/internal/ui"
)

const stdinName = "stdin"

type detectOptions struct {
	types       []string
	format      string
	mask        bool
	redact      bool
	failOnFound bool
	stripANSI   bool
	quiet       bool
}

func newDetectCmd(state *appState) *cobra.Command {
	var opts detectOptions
	cmd := &cobra.Command{
		Use:   "detect [file...]",
		Short: "Scan files or stdin for secrets",
		Long: "Scan files, or stdin when no file is given, and report every secret found.\n" +
			"Use \"-\" to read stdin alongside files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = string(state.cfg.Output.Format)
			}
			if !cmd.Flags().Changed("mask") {
				opts.mask = state.cfg.Output.Mask
			}
			return runDetect(cmd, state, opts, args)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "restrict to type ids or vendors (repeatable)")
	cmd.Flags().StringVar(&opts.format, "format", string(types.FormatText), "output format: text|json|yaml")
	cmd.Flags().BoolVar(&opts.mask, "mask", true, "mask secret values in output")
	cmd.Flags().BoolVar(&opts.redact, "redact", false, "print the input with secrets masked instead of a report")
	cmd.Flags().BoolVar(&opts.failOnFound, "fail-on-found", false, "exit with status 1 when secrets are found")
	cmd.Flags().BoolVar(&opts.stripANSI, "strip-ansi", false, "ignore terminal escape sequences in the input")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the summary line")
	return cmd
}

type source struct {
	name string
	data []byte
}

func runDetect(cmd *cobra.Command, state *appState, opts detectOptions, args []string) error {
	format := types.Format(opts.format)
	switch format {
	case types.FormatText, types.FormatJSON, types.FormatYAML:
	default:
		return fmt.Errorf("--format must be text|json|yaml, got %q", opts.format)
	}
	eng, err := state.engine()
	if err != nil {
		return err
	}
	sources, err := readSources(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	maskOpts := mask.Options{Char: state.cfg.Output.MaskChar, Reveal: state.cfg.Output.Reveal}
	var (
		findings []finding
		scanned  uint64
	)
	out := cmd.OutOrStdout()
	for _, src := range sources {
		scanned += uint64(len(src.data))
		text := src.data
		var stripped ansi.Stripped
		if opts.stripANSI {
			stripped = ansi.Strip(src.data)
			text = stripped.Text
		}
		secrets, err := eng.DetectBytes(text, opts.types...)
		if err != nil {
			return err
		}
		if opts.redact {
			spans := make([]mask.Span, len(secrets))
			for i, s := range secrets {
				spans[i] = mask.Span{Start: s.Span.Start, End: s.Span.End}
			}
			if _, err := out.Write(mask.Apply(text, spans, maskOpts)); err != nil {
				return err
			}
		}
		for _, s := range secrets {
			value := s.Value
			if opts.mask {
				value = mask.Value(value, maskOpts)
			}
			start, end := s.Span.Start, s.Span.End
			if opts.stripANSI {
				start, end = stripped.Raw(start, end)
			}
			findings = append(findings, finding{
				Source: src.name,
				Line:   bytes.Count(src.data[:start], []byte("\n")) + 1,
				Type:   s.Type,
				Value:  value,
				Start:  start,
				End:    end,
			})
		}
	}

	state.logger.Infof("detect: %d findings in %d sources", len(findings), len(sources))
	if !opts.redact {
		if err := writeFindings(out, format, findings); err != nil {
			return err
		}
	}
	if !opts.quiet && (format == types.FormatText || opts.redact) {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Summary(len(findings), len(sources), scanned))
	}
	if opts.failOnFound && len(findings) > 0 {
		return &exitCodeError{code: 1}
	}
	return nil
}

func readSources(stdin io.Reader, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	sources := make([]source, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			if isTerminal(stdin) {
				return nil, errors.New("no input: pass files or pipe text on stdin")
			}
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			sources = append(sources, source{name: stdinName, data: data})
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg, err)
		}
		sources = append(sources, source{name: arg, data: data})
	}
	return sources, nil
}
