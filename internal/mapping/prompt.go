package mapping

import (
	"fmt"
	"os"

	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

// MimeTypePNG is the payload type the extraction capability receives for
// room wallpapers.
const MimeTypePNG = "image/png"

// promptTemplate is parameterized only by the room identifier; no other
// dynamic content is injected.
const promptTemplate = `This is a pixel art %s from a virtual pet dashboard. I need a spatial map of everything in this room. For each notable object or area, give me:
- "name": short identifier (lowercase, e.g. "cauldron", "left bookshelf")
- "description": a fun, in-character description (1 sentence, include an emoji)
- "x": approximate horizontal position as 0-1 from left edge
- "y": approximate vertical position as 0-1 from top edge

Be thorough - potions, furniture, books, tools, decorations, plants, everything you can identify.
Write descriptions as if a cute wizard character is describing their own stuff.

Return ONLY a JSON array, no markdown fences:
[{"name": "...", "description": "...", "x": 0.XX, "y": 0.XX}, ...]`

// BuildPrompt composes the extraction prompt for a room.
func BuildPrompt(room string) string {
	return fmt.Sprintf(promptTemplate, room)
}

// LoadImage reads the room wallpaper as raw bytes. Contents are not
// inspected; the extraction capability accepts whatever the dashboard
// renders.
func LoadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "mapping", "read image", path, err)
	}
	return data, nil
}
