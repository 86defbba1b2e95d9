package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/lolocompany/dtc-replay/pkg/dtc"
	"github.com/lolocompany/dtc-replay/pkg/transcoder"
)

// Version is set with -ldflags "-X .../commands.Version=..." in release builds
var Version = "unknown"

func getVersion() string {
	if Version != "unknown" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.tag" && setting.Value != "" {
				return setting.Value
			}
		}
		if info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "unknown"
}

func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:        "version",
		Usage:       "Print version information",
		Description: "Display the version of dtc-replay, the DTC protocol version it speaks and the capture format it writes.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Printf("dtc-replay version %s (DTC protocol %d, capture format %d)\n",
				getVersion(), dtc.CurrentVersion, transcoder.ProtocolVersion)
			return err
		},
	}
}
