package binstring

import (
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
)

// LogPreviewLimit caps how many bytes LogValue quotes.
var LogPreviewLimit = 64

// LogValue implements slog.LogValuer. The value is quoted so that binary
// content never reaches a log sink raw.
func (s BinString) LogValue() slog.Value {
	preview := s.buf
	truncated := false
	if LogPreviewLimit >= 0 && len(preview) > LogPreviewLimit {
		preview, truncated = preview[:LogPreviewLimit], true
	}
	attrs := []slog.Attr{
		slog.String("size", humanize.Bytes(uint64(len(s.buf)))),
		slog.String("value", strconv.Quote(string(preview))),
	}
	if truncated {
		attrs = append(attrs, slog.Bool("truncated", true))
	}
	return slog.GroupValue(attrs...)
}
