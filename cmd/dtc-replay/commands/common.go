package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

func errRawUnsupported(command string) error {
	return fmt.Errorf("%s does not support --format raw", command)
}

func typeFlag(usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "type",
		Aliases: []string{"T"},
		Usage:   usage + " (name or number, repeatable or comma separated)",
	}
}

func directionFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "direction",
		Aliases: []string{"d"},
		Usage:   usage + " (client or server)",
	}
}

// openCapture opens a capture file and applies the --type and --direction
// filters of cmd. Reads are counted on spinner when it is not nil.
func openCapture(cmd *cli.Command, path string, preserveTimestamps bool, spinner *util.ProgressSpinner) (*pkg.MessageFileReader, error) {
	types, err := pkg.ParseTypeFilter(cmd.StringSlice("type"))
	if err != nil {
		return nil, err
	}
	dir, err := parseDirectionFlag(cmd.String("direction"))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	decoder, err := transcoder.NewDecodeReader(spinner.ReadSeeker(file), preserveTimestamps)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkg.NewMessageFileReader(decoder, types, dir), nil
}

// closeQuietly closes c and ignores the error; for read-only resources.
func closeQuietly(c io.Closer) {
	_ = c.Close()
}
