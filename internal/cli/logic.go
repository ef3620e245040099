package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dirtotal/internal/logging"
	"github.com/idelchi/dirtotal/internal/walker"
)

// ErrVerifyMismatch is returned when --verify finds a different total.
var ErrVerifyMismatch = errors.New("total does not match reference walk")

func logic(options walker.Options, out, errOut io.Writer) error {
	level := slog.LevelWarn
	if options.Debug {
		level = slog.LevelDebug
	}

	log := logging.New(errOut, level, options.LogFormat)
	options.Logger = logging.Component(log, "walker")

	stats, err := walker.Run(options)
	if err != nil {
		return err
	}

	if stats.ErrorCount > 0 {
		log.Warn("some entries could not be read; total may be undercounted", "errors", stats.ErrorCount)
	}

	if options.Verify {
		ref, err := walker.Reference(stats.Root)
		if err != nil {
			return err
		}

		if ref != stats.TotalBytes {
			return fmt.Errorf("%w: walked %s (%d bytes), reference %s (%d bytes)", ErrVerifyMismatch,
				humanize.IBytes(stats.TotalBytes), stats.TotalBytes, humanize.IBytes(ref), ref)
		}

		log.Debug("reference walk agrees", "bytes", ref)
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(stats, out)
	case "table":
		return PrintTable(stats, out)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
