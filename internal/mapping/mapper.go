package mapping

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/sprite-who-codes/claudron-dashboard/internal/logging"
	"github.com/sprite-who-codes/claudron-dashboard/internal/services"
	"github.com/sprite-who-codes/claudron-dashboard/internal/spatialmap"
)

// Extractor is the narrow contract the pipeline consumes from the vision
// extraction capability: image bytes plus prompt in, raw text out.
type Extractor interface {
	DescribeImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}

// Mapper runs the extraction pipeline for one room and merges the result
// into the spatial map store.
type Mapper struct {
	extractor Extractor
	store     *spatialmap.Store
	logger    *slog.Logger
}

// NewMapper constructs a mapper. The extractor and store are required.
func NewMapper(extractor Extractor, store *spatialmap.Store, logger *slog.Logger) (*Mapper, error) {
	if extractor == nil || store == nil {
		return nil, errors.New("mapper requires extractor and store")
	}
	return &Mapper{
		extractor: extractor,
		store:     store,
		logger:    logging.NewComponentLogger(logger, "mapping"),
	}, nil
}

// MapRoom maps one room wallpaper to its annotation list and replaces the
// room's entry in the store. It returns the accepted annotations. Any
// failure leaves the store untouched; one invocation maps one room.
func (m *Mapper) MapRoom(ctx context.Context, room, imagePath string) (spatialmap.RoomMap, error) {
	room = strings.TrimSpace(room)
	if room == "" {
		return nil, services.Wrap(services.ErrValidation, "mapping", "map room", "room identifier required", nil)
	}

	image, err := LoadImage(imagePath)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("wallpaper loaded",
		logging.String(logging.FieldRoom, room),
		logging.String(logging.FieldPath, imagePath),
		logging.Int("bytes", len(image)))

	raw, err := m.extractor.DescribeImage(ctx, image, MimeTypePNG, BuildPrompt(room))
	if err != nil {
		return nil, services.Wrap(services.ErrExtraction, "mapping", "describe image", room, err)
	}

	records, err := spatialmap.DecodeRecords(raw)
	if err != nil {
		return nil, err
	}
	annotations, err := spatialmap.ValidateRecords(records)
	if err != nil {
		return nil, err
	}

	if err := m.store.SetRoom(room, annotations); err != nil {
		return nil, err
	}

	m.logger.Info("room mapped",
		logging.String(logging.FieldRoom, room),
		logging.Int("annotations", len(annotations)))
	return annotations, nil
}
