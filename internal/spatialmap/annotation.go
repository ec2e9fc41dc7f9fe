package spatialmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
)

// Annotation is one labeled point of interest within a room wallpaper.
// Coordinates are normalized to [0,1] relative to image width and height and
// rounded to 2 decimal places.
type Annotation struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// RoomMap is the ordered annotation list for a single room.
type RoomMap []Annotation

var requiredFields = []string{"name", "description", "x", "y"}

// ValidateRecords converts raw parsed records into the final RoomMap.
// Every record must carry all four required fields, non-null; names and
// descriptions pass through unchanged. A single bad record rejects the whole
// room so the store is never left with a partially accepted update.
func ValidateRecords(records []map[string]any) (RoomMap, error) {
	annotations := make(RoomMap, 0, len(records))
	for i, record := range records {
		for _, field := range requiredFields {
			value, ok := record[field]
			if !ok || value == nil {
				return nil, services.Wrap(services.ErrValidation, "spatialmap", "validate",
					fmt.Sprintf("record %d missing %q: %v", i, field, record), nil)
			}
		}
		name, ok := record["name"].(string)
		if !ok {
			return nil, services.Wrap(services.ErrValidation, "spatialmap", "validate",
				fmt.Sprintf("record %d: name is not a string: %v", i, record), nil)
		}
		description, ok := record["description"].(string)
		if !ok {
			return nil, services.Wrap(services.ErrValidation, "spatialmap", "validate",
				fmt.Sprintf("record %d: description is not a string: %v", i, record), nil)
		}
		x, err := coerceCoordinate(record["x"])
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "spatialmap", "validate",
				fmt.Sprintf("record %d: x: %v", i, err), nil)
		}
		y, err := coerceCoordinate(record["y"])
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "spatialmap", "validate",
				fmt.Sprintf("record %d: y: %v", i, err), nil)
		}
		annotations = append(annotations, Annotation{
			Name:        name,
			Description: description,
			X:           x,
			Y:           y,
		})
	}
	return annotations, nil
}

// coerceCoordinate accepts JSON numbers and numeric strings, rounds to 2
// decimal places, and clamps into [0,1]. Extraction models occasionally emit
// coordinates like "0.35" or values a hair outside the frame.
func coerceCoordinate(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
	f = math.Round(f*100) / 100
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f, nil
}
