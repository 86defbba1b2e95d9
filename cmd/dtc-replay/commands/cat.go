package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/output"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
)

func CatCommand() *cli.Command {
	return &cli.Command{
		Name:        "cat",
		Usage:       "Display recorded messages from a capture file",
		Description: "Decode the messages of a capture file and print them as a table, JSON lines, CBOR or the raw captured bytes.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input capture file",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "Only output the count of messages, don't display them",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of messages to display (0 for all)",
			},
			typeFlag("Only show messages of these types"),
			directionFlag("Only show messages sent by this side"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.String("input")
			countOnly := cmd.Bool("count")

			reader, err := openCapture(cmd, input, true, nil)
			if err != nil {
				return err
			}
			defer closeQuietly(reader)

			enc, err := util.NewEncoder(cmd)
			if err != nil {
				return err
			}
			if enc.Format() == output.FormatTable && !countOnly {
				if err := enc.Header("TIME", "DIRECTION", "TYPE", "SIZE", "FIELDS"); err != nil {
					return err
				}
			}

			count, err := pkg.Cat(ctx, pkg.CatConfig{
				Reader:    reader,
				Emit:      catEmitter(enc),
				CountOnly: countOnly,
				Limit:     cmd.Int("limit"),
				Logger:    util.Logger(),
			})
			if ferr := enc.Flush(); ferr != nil && err == nil {
				err = ferr
			}
			if err != nil {
				return err
			}

			if countOnly {
				_, err := fmt.Fprintf(os.Stdout, "%d\n", count)
				return err
			}
			return nil
		},
	}
}

// catFlushRows is how many table rows are buffered before they are written out
const catFlushRows = 100

func catEmitter(enc *output.Encoder) func(pkg.DecodedMessage) error {
	switch enc.Format() {
	case output.FormatRaw:
		return func(m pkg.DecodedMessage) error {
			return enc.WriteRaw(m.Raw)
		}
	case output.FormatTable:
		rows := 0
		return func(m pkg.DecodedMessage) error {
			fields := formatFields(m)
			if err := enc.Row(
				m.Timestamp.Format(time.RFC3339Nano),
				m.Direction,
				m.Type,
				strconv.Itoa(m.Size),
				fields,
			); err != nil {
				return err
			}
			rows++
			if rows%catFlushRows == 0 {
				return enc.Flush()
			}
			return nil
		}
	default:
		return func(m pkg.DecodedMessage) error {
			return enc.Encode(m)
		}
	}
}

func formatFields(m pkg.DecodedMessage) string {
	if m.Error != "" {
		return "error: " + m.Error
	}
	parts := make([]string, 0, len(m.Fields))
	for _, f := range m.Fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Name, f.Value))
	}
	return strings.Join(parts, " ")
}
