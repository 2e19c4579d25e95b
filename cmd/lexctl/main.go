// Command lexctl runs intent events through the advisor locally.
//
//	lexctl handle --file event.json --pretty
//	cat event.json | lexctl handle --strict
//	lexctl recommend Very High
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/codec"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/portfolio"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/registration"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/telemetry"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "lexctl:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "lexctl",
		Usage: "exercise the portfolio advisor without a bot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level written to stderr (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "handle",
				Usage:     "dispatch one intent event and print the dialog action",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read the event from `FILE` instead of stdin"},
					&cli.BoolFlag{Name: "strict", Usage: "reject unparsable numeric slots"},
					&cli.BoolFlag{Name: "pretty", Usage: "indent the JSON output"},
				},
				Action: runHandle,
			},
			{
				Name:      "recommend",
				Usage:     "print the allocation for a risk level",
				ArgsUsage: "<risk level>",
				Action:    runRecommend,
			},
		},
	}
}

func runHandle(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Root()

	logger, err := telemetry.NewLogger(errWriter(root), root.String("log-level"), "text")
	if err != nil {
		return err
	}

	var in io.Reader = reader(root)
	if path := cmd.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open event: %w", err)
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read event: %w", err)
	}

	dispatcher, err := registration.NewDispatcher(logger, registration.Options{
		StrictNumeric: cmd.Bool("strict"),
	})
	if err != nil {
		return err
	}

	out := writer(root)
	pretty := cmd.Bool("pretty")

	req, err := codec.DecodeEvent(data)
	if err != nil {
		return writeFailure(out, err, pretty)
	}
	resp, err := dispatcher.Dispatch(ctx, req)
	if err != nil {
		return writeFailure(out, err, pretty)
	}
	encoded, err := codec.EncodeResponse(resp)
	if err != nil {
		return err
	}
	return writeJSON(out, encoded, pretty)
}

// writeFailure prints the JSON error envelope and returns err so the
// process exits non-zero.
func writeFailure(w io.Writer, err error, pretty bool) error {
	if werr := writeJSON(w, codec.FormatError(err).Body, pretty); werr != nil {
		return werr
	}
	return err
}

func runRecommend(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		levels := make([]string, 0, len(portfolio.RiskLevels()))
		for _, l := range portfolio.RiskLevels() {
			levels = append(levels, string(l))
		}
		return fmt.Errorf("risk level required, one of: %s", strings.Join(levels, ", "))
	}
	level := strings.Join(cmd.Args().Slice(), " ")
	_, err := fmt.Fprintln(writer(cmd.Root()), portfolio.Recommend(level))
	return err
}

func writeJSON(w io.Writer, data []byte, pretty bool) error {
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	_, err := fmt.Fprintln(w, string(data))
	return err
}

func reader(cmd *cli.Command) io.Reader {
	if cmd.Reader != nil {
		return cmd.Reader
	}
	return os.Stdin
}

func writer(cmd *cli.Command) io.Writer {
	if cmd.Writer != nil {
		return cmd.Writer
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if cmd.ErrWriter != nil {
		return cmd.ErrWriter
	}
	return os.Stderr
}
