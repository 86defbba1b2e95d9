package commands

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/output"
	"github.com/lolocompany/dtc-replay/cmd/dtc-replay/util"
	"github.com/lolocompany/dtc-replay/pkg"
	"github.com/lolocompany/dtc-replay/pkg/dtc"
)

func CatalogCommand() *cli.Command {
	return &cli.Command{
		Name:        "catalog",
		Usage:       "List the DTC message types this tool can decode",
		Description: "Print every known message type with its direction, canonical size and number of fields.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "direction",
				Aliases: []string{"d"},
				Usage:   "Only list messages sent by this side (client or server)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := parseDirectionFlag(cmd.String("direction"))
			if err != nil {
				return err
			}
			enc, err := util.NewEncoder(cmd)
			if err != nil {
				return err
			}

			entries := pkg.DescribeCatalog(dir)
			switch enc.Format() {
			case output.FormatTable:
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						strconv.Itoa(int(e.Type)),
						e.Name,
						e.Direction,
						strconv.Itoa(e.Size),
						strconv.Itoa(e.Fields),
					})
				}
				return enc.EncodeTable([]string{"TYPE", "NAME", "DIRECTION", "SIZE", "FIELDS"}, rows)
			case output.FormatRaw:
				return errRawUnsupported("catalog")
			default:
				return output.EncodeSlice(enc, entries)
			}
		},
	}
}

func parseDirectionFlag(s string) (dtc.Direction, error) {
	if s == "" {
		return 0, nil
	}
	return dtc.ParseDirection(s)
}
