package dicom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameRateStrings(t *testing.T) {
	testCases := []struct {
		rate      FrameRate
		rateStr   string
		frameTime string
	}{
		{30, "30", "33.333333"},
		{29.97, "30", "33.3667"},
		{25, "25", "40"},
		{24, "24", "41.666667"},
		{23.976, "24", "41.708375"},
		{59.94, "60", "16.68335"},
		{0, "0", "0"},
		{-1, "-1", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.rateStr, func(t *testing.T) {
			require.Equal(t, tc.rateStr, tc.rate.RateString())
			require.Equal(t, tc.frameTime, tc.rate.FrameTimeString())
		})
	}
}

func TestAspectRatioString(t *testing.T) {
	testCases := []struct {
		ratio    AspectRatio
		expected string
	}{
		{1.0, `1\1`},
		{1.333, `4\3`},
		{16.0 / 9.0, `16\9`},
		{2.21, `221\100`},
		{1.85, `1850\1000`}, // No table entry, falls back to thousandths.
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.ratio.RatioString())
		})
	}
}
