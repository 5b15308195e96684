// Package convert runs a single MPEG-2 to DICOM conversion: probe
// the source metadata, seed the attribute table from configuration
// and hand the stream to the container builder.
package convert

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"mpg2dcm/pkg/dicom"
	"mpg2dcm/pkg/mpeg"
	"mpg2dcm/pkg/uiddb"

	"github.com/rs/zerolog"
)

// Converter converts files.
type Converter struct {
	Log zerolog.Logger
}

// Convert wraps the stream at inputPath in a DICOM file at
// outputPath. The destination may be left invalid on failure and
// should be discarded.
func (c *Converter) Convert(cfg Config, inputPath, outputPath string) error {
	ds, err := datasetFromOverrides(cfg.Overrides)
	if err != nil {
		return err
	}

	if cfg.StudyKey != "" {
		if err := c.resolveStudyUIDs(cfg, ds); err != nil {
			return err
		}
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	md, err := mpeg.ParseMetadata(input)
	if err != nil {
		return fmt.Errorf("parse metadata: %w", err)
	}
	c.logMetadata(md)

	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind input: %w", err)
	}

	var length *int64
	if cfg.DeclareLength {
		info, err := input.Stat()
		if err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
		size := info.Size()
		length = &size
	}

	builder := dicom.NewBuilderWith(ds)
	builder.MergeMetadata(md)

	if err := builder.WriteFile(outputPath, input, length); err != nil {
		return fmt.Errorf("write container: %w", err)
	}

	c.Log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Bool("declaredLength", cfg.DeclareLength).
		Msg("wrote dicom file")
	return nil
}

// resolveStudyUIDs seeds study and series identifiers from the uid
// database. Override values win.
func (c *Converter) resolveStudyUIDs(cfg Config, ds *dicom.Dataset) error {
	db, err := uiddb.Open(cfg.UIDDatabase)
	if err != nil {
		return err
	}
	defer db.Close()

	study, series, err := db.StudyUIDs(cfg.StudyKey)
	if err != nil {
		return err
	}

	if !ds.Contains(dicom.TagStudyInstanceUID) {
		ds.SetString(dicom.TagStudyInstanceUID, dicom.UI, study)
	}
	if !ds.Contains(dicom.TagSeriesInstanceUID) {
		ds.SetString(dicom.TagSeriesInstanceUID, dicom.UI, series)
	}

	c.Log.Debug().
		Str("studyKey", cfg.StudyKey).
		Str("study", study).
		Str("series", series).
		Msg("resolved study uids")
	return nil
}

// datasetFromOverrides resolves configured attribute keywords into
// an initial attribute table.
func datasetFromOverrides(overrides map[string]string) (*dicom.Dataset, error) {
	ds := dicom.NewDataset()
	for keyword, value := range overrides {
		tag, vr, exists := dicom.LookupKeyword(keyword)
		if !exists {
			return nil, fmt.Errorf("unknown attribute keyword: %v", keyword)
		}

		if vr == dicom.US {
			n, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("attribute %v: %w", keyword, err)
			}
			ds.SetUint16(tag, vr, uint16(n))
			continue
		}
		ds.SetString(tag, vr, value)
	}
	return ds, nil
}

func (c *Converter) logMetadata(md dicom.VideoMetadata) {
	event := c.Log.Debug()
	if md.Rows != nil {
		event = event.Uint16("rows", *md.Rows)
	}
	if md.Columns != nil {
		event = event.Uint16("columns", *md.Columns)
	}
	if md.FrameRate != nil {
		event = event.Float64("frameRate", float64(*md.FrameRate))
	}
	if md.AspectRatio != nil {
		event = event.Float64("aspectRatio", float64(*md.AspectRatio))
	}
	event.Msg("probed stream metadata")
}
