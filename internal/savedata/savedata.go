// Package savedata converts the crop saver's two tables to and from the blob
// persisted under a save slot.
//
// Both tables are keyed by LocationKey.String() ("LocationName|TileX|TileY").
// Blobs are JSON, optionally wrapped in a zstd frame; Decode detects the frame
// by its magic number so either form can be read back regardless of settings.
package savedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// Tables is the persisted form of the crop saver state
type Tables struct {
	Version             int                              `json:"version"`
	CropDictionary      map[string]domain.TrackedCrop    `json:"crop_dictionary"`
	BeginningOfDayCrops map[string]domain.GrowthSnapshot `json:"beginning_of_day_crops"`
}

// NewTables returns empty tables at the current format version
func NewTables() Tables {
	return Tables{
		Version:             FormatVersion,
		CropDictionary:      make(map[string]domain.TrackedCrop),
		BeginningOfDayCrops: make(map[string]domain.GrowthSnapshot),
	}
}

// Pack builds persisted tables from the in-memory maps
func Pack(tracked map[domain.LocationKey]domain.TrackedCrop, beginningOfDay map[domain.LocationKey]domain.GrowthSnapshot) Tables {
	t := NewTables()
	for key, rec := range tracked {
		t.CropDictionary[key.String()] = rec
	}
	for key, snap := range beginningOfDay {
		t.BeginningOfDayCrops[key.String()] = snap
	}
	return t
}

// InLocation returns the entries whose key belongs to location. An empty
// location returns t unchanged.
func (t Tables) InLocation(location string) Tables {
	if location == "" {
		return t
	}
	prefix := domain.LocationKeyPrefix(location)

	out := NewTables()
	for k, v := range t.CropDictionary {
		if strings.HasPrefix(k, prefix) {
			out.CropDictionary[k] = v
		}
	}
	for k, v := range t.BeginningOfDayCrops {
		if strings.HasPrefix(k, prefix) {
			out.BeginningOfDayCrops[k] = v
		}
	}
	return out
}

// Unpack converts persisted tables back into in-memory maps.
// Entries whose key cannot be parsed are dropped and returned in skipped.
func (t Tables) Unpack() (tracked map[domain.LocationKey]domain.TrackedCrop, beginningOfDay map[domain.LocationKey]domain.GrowthSnapshot, skipped []string) {
	tracked = make(map[domain.LocationKey]domain.TrackedCrop, len(t.CropDictionary))
	beginningOfDay = make(map[domain.LocationKey]domain.GrowthSnapshot, len(t.BeginningOfDayCrops))

	for raw, rec := range t.CropDictionary {
		key, err := domain.ParseLocationKey(raw)
		if err != nil {
			skipped = append(skipped, raw)
			continue
		}
		if rec.OriginalSeasons == nil {
			rec.OriginalSeasons = []string{}
		}
		tracked[key] = rec
	}

	for raw, snap := range t.BeginningOfDayCrops {
		key, err := domain.ParseLocationKey(raw)
		if err != nil {
			skipped = append(skipped, raw)
			continue
		}
		beginningOfDay[key] = snap
	}

	return tracked, beginningOfDay, skipped
}

// Encode serializes tables, compressing with zstd when compress is set
func Encode(t Tables, compress bool) ([]byte, error) {
	if t.Version == 0 {
		t.Version = FormatVersion
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal crop data: %w", err)
	}

	if !compress {
		return raw, nil
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

// Decode parses a blob produced by Encode. Missing tables decode as empty maps.
// Any failure is reported as domain.ErrCorruptSaveData.
func Decode(blob []byte) (Tables, error) {
	if len(blob) == 0 {
		return Tables{}, fmt.Errorf("%w: empty blob", domain.ErrCorruptSaveData)
	}

	raw := blob
	if IsCompressed(blob) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return Tables{}, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()

		raw, err = dec.DecodeAll(blob, nil)
		if err != nil {
			return Tables{}, fmt.Errorf("%w: zstd: %v", domain.ErrCorruptSaveData, err)
		}
	}

	var t Tables
	if err := json.Unmarshal(raw, &t); err != nil {
		return Tables{}, fmt.Errorf("%w: %v", domain.ErrCorruptSaveData, err)
	}

	if t.Version > FormatVersion {
		return Tables{}, fmt.Errorf("%w: unsupported version %d", domain.ErrCorruptSaveData, t.Version)
	}

	if t.CropDictionary == nil {
		t.CropDictionary = make(map[string]domain.TrackedCrop)
	}
	if t.BeginningOfDayCrops == nil {
		t.BeginningOfDayCrops = make(map[string]domain.GrowthSnapshot)
	}
	t.Version = FormatVersion

	return t, nil
}

// IsCompressed reports whether blob starts with a zstd frame
func IsCompressed(blob []byte) bool {
	return bytes.HasPrefix(blob, zstdMagic)
}
