package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crystalix007/numband/numband"
)

// errUnknownCommand is returned for script lines that start with an
// unrecognised word.
var errUnknownCommand = errors.New("unknown command")

func sessionCmd(a *app) *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "session [script]",
		Short: "Replay an editing script against a band editor",
		Long: `Reads one command per line from the script file (or stdin) and applies it to a band editor:

  text <text>                     replace the number-list text
  toggle <band> lower|upper on|off  set an endpoint's inclusivity
  annotate <band> <annotation>    set a band's annotation
  show                            print the bands
  history                         print the retained annotations
  locate <value>                  print the band containing a value
  clean                           print the cleaned-up number list

Blank lines and lines starting with # are ignored. Failing commands are
reported and the script continues.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()

			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer f.Close()

				in = f
			}

			s := &session{
				editor:   numband.NewEditor(numband.WithLogger(a.logger)),
				renderer: newRenderer(cmd.OutOrStdout(), a.cfg.Output()),
				out:      cmd.OutOrStdout(),
				errOut:   cmd.ErrOrStderr(),
				logger:   a.logger,
			}

			if historyFile != "" {
				if err := s.loadHistory(historyFile); err != nil {
					return err
				}
			}

			return s.run(in)
		},
	}

	cmd.Flags().StringVar(&historyFile, "history", "", "file of retained annotations to start from")

	return cmd
}

// session applies script commands to an editor.
type session struct {
	editor   *numband.Editor
	renderer renderer
	out      io.Writer
	errOut   io.Writer
	logger   *zap.Logger
}

func (s *session) loadHistory(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open history")
	}
	defer f.Close()

	// Malformed records are dropped by the editor and only reported.
	if err := s.editor.LoadHistory(f); err != nil {
		fmt.Fprintf(s.errOut, "history: %v\n", err)
	}

	return nil
}

func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := s.exec(line); err != nil {
			s.logger.Debug("command failed", zap.Int("line", lineNumber), zap.Error(err))
			fmt.Fprintf(s.errOut, "line %d: %v\n", lineNumber, err)
		}
	}

	return errors.Wrap(scanner.Err(), "read script")
}

func (s *session) exec(line string) error {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "text":
		_, err := s.editor.SetText(rest)

		return err
	case "toggle":
		return s.toggle(rest)
	case "annotate":
		indexField, annotation, _ := strings.Cut(rest, " ")

		i, err := parseBandIndex(indexField)
		if err != nil {
			return err
		}

		return s.editor.Annotate(i, strings.TrimSpace(annotation))
	case "show":
		return s.renderer.Partition(s.editor.Partition())
	case "history":
		return s.renderer.History(s.editor.History())
	case "locate":
		x, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return errors.Wrapf(err, "parse value %q", rest)
		}

		i, err := s.editor.Locate(x)
		if err != nil {
			return err
		}

		return s.renderer.Band(i, s.editor.Partition()[i])
	case "clean":
		_, err := fmt.Fprintln(s.out, numband.CleanUp(s.editor.Text()))

		return err
	default:
		return errors.Wrapf(errUnknownCommand, "%q", command)
	}
}

func (s *session) toggle(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return errors.Errorf("toggle expects <band> lower|upper on|off, got %q", args)
	}

	i, err := parseBandIndex(fields[0])
	if err != nil {
		return err
	}

	var side numband.Side

	switch fields[1] {
	case "lower":
		side = numband.Lower
	case "upper":
		side = numband.Upper
	default:
		return errors.Errorf("unknown side %q", fields[1])
	}

	var inclusive bool

	switch fields[2] {
	case "on", "inclusive":
		inclusive = true
	case "off", "exclusive":
		inclusive = false
	default:
		return errors.Errorf("expected on or off, got %q", fields[2])
	}

	return s.editor.Toggle(i, side, inclusive)
}

func parseBandIndex(field string) (int, error) {
	i, err := strconv.Atoi(field)
	if err != nil {
		return 0, errors.Wrapf(err, "parse band index %q", field)
	}

	return i, nil
}
