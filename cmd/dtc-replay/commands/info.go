package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/output"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:        "info",
		Usage:       "Summarize a capture file",
		Description: "Show the format version, compression, time range and message counts per type of a capture file.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input capture file",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.String("input")
			file, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open input file: %w", err)
			}
			decoder, err := transcoder.NewDecodeReader(file, true)
			if err != nil {
				file.Close()
				return fmt.Errorf("%s: %w", input, err)
			}
			defer closeQuietly(decoder)

			info, err := pkg.CollectInfo(ctx, pkg.InfoConfig{Decoder: decoder})
			if err != nil {
				return err
			}

			enc, err := util.NewEncoder(cmd)
			if err != nil {
				return err
			}
			switch enc.Format() {
			case output.FormatTable:
				return writeInfoTable(enc, input, info)
			case output.FormatRaw:
				return errRawUnsupported("info")
			default:
				return enc.Encode(info)
			}
		},
	}
}

func writeInfoTable(enc *output.Encoder, path string, info *pkg.CaptureInfo) error {
	w := os.Stdout
	fmt.Fprintf(w, "file:          %s\n", path)
	fmt.Fprintf(w, "version:       %d\n", info.Version)
	fmt.Fprintf(w, "compression:   %s\n", info.Compression)
	fmt.Fprintf(w, "messages:      %d (%d bytes)\n", info.Messages, info.Bytes)
	if info.Messages > 0 {
		fmt.Fprintf(w, "first:         %s\n", info.First.Format(time.RFC3339Nano))
		fmt.Fprintf(w, "last:          %s\n", info.Last.Format(time.RFC3339Nano))
		fmt.Fprintf(w, "duration:      %s\n", info.Last.Sub(info.First))
	}
	fmt.Fprintf(w, "unknown types: %d\n", info.Unknown)
	fmt.Fprintf(w, "invalid:       %d\n\n", info.Invalid)

	rows := make([][]string, 0, len(info.Types))
	for _, t := range info.Types {
		rows = append(rows, []string{
			strconv.Itoa(int(t.TypeID)),
			t.Type,
			t.Direction,
			strconv.FormatInt(t.Count, 10),
			strconv.FormatInt(t.Bytes, 10),
		})
	}
	return enc.EncodeTable([]string{"TYPE", "NAME", "DIRECTION", "COUNT", "BYTES"}, rows)
}
