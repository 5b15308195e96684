package dicom

import (
	"math"
	"strconv"
	"strings"
)

// FrameRate is a video frame rate in frames per second.
type FrameRate float64

// RateString returns the frame rate rounded to a whole
// frames-per-second integer string for the CineRate attribute.
func (r FrameRate) RateString() string {
	return strconv.Itoa(int(math.Round(float64(r))))
}

// FrameTimeString returns the frame interval in milliseconds as a
// decimal string for the FrameTime attribute. Rates that have no
// interval yield "0".
func (r FrameRate) FrameTimeString() string {
	if r <= 0 {
		return "0"
	}
	ms := 1000 / float64(r)
	s := strconv.FormatFloat(ms, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// AspectRatio is a display aspect ratio, horizontal over vertical.
type AspectRatio float64

// ratioTable maps the common MPEG-2 display aspect ratios to their
// vertical\horizontal integer pair.
var ratioTable = []struct {
	ratio      float64
	vertical   int
	horizontal int
}{
	{1.0, 1, 1},
	{4.0 / 3.0, 4, 3},
	{16.0 / 9.0, 16, 9},
	{2.21, 221, 100},
}

// RatioString returns the integer pair string for the
// PixelAspectRatio attribute.
func (a AspectRatio) RatioString() string {
	for _, entry := range ratioTable {
		if math.Abs(float64(a)-entry.ratio) < 0.001 {
			return strconv.Itoa(entry.vertical) + `\` + strconv.Itoa(entry.horizontal)
		}
	}
	return strconv.Itoa(int(math.Round(float64(a)*1000))) + `\1000`
}

// VideoMetadata holds the optional attributes extractable from a
// video stream. Absent fields leave the corresponding dataset
// entries untouched.
type VideoMetadata struct {
	Rows        *uint16
	Columns     *uint16
	FrameRate   *FrameRate
	AspectRatio *AspectRatio
}
