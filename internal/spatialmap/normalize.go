package spatialmap

import (
	"encoding/json"
	"strings"

	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

const fenceMarker = "```"

// StripFences removes a surrounding markdown code fence from text, if
// present. The opening fence line is dropped whole (it may carry a language
// tag such as ```json); if a closing fence remains, everything from its last
// occurrence onward is dropped. Unfenced text passes through trimmed.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fenceMarker) {
		return text
	}
	if _, rest, found := strings.Cut(text, "\n"); found {
		text = rest
	} else {
		text = ""
	}
	if strings.HasSuffix(strings.TrimSpace(text), fenceMarker) {
		if idx := strings.LastIndex(text, fenceMarker); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}

// DecodeRecords normalizes raw extraction output and strictly parses it as a
// JSON array of objects. Order is preserved as returned by the extraction
// capability. Anything that is not valid JSON after fence stripping is a
// hard parse failure for the room.
func DecodeRecords(raw string) ([]map[string]any, error) {
	text := StripFences(raw)
	if text == "" {
		return nil, services.Wrap(services.ErrParse, "spatialmap", "decode", "empty extraction output", nil)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, services.Wrap(services.ErrParse, "spatialmap", "decode", "extraction output is not a JSON array", err)
	}
	return records, nil
}
