package dicom

// VR is a DICOM value representation code.
type VR [2]byte

// Value representations used by this package.
var (
	AT = VR{'A', 'T'} // Attribute tag.
	CS = VR{'C', 'S'} // Code string.
	DA = VR{'D', 'A'} // Date.
	DS = VR{'D', 'S'} // Decimal string.
	IS = VR{'I', 'S'} // Integer string.
	LO = VR{'L', 'O'} // Long string.
	OB = VR{'O', 'B'} // Other byte.
	PN = VR{'P', 'N'} // Person name.
	SH = VR{'S', 'H'} // Short string.
	TM = VR{'T', 'M'} // Time.
	UI = VR{'U', 'I'} // Unique identifier.
	UL = VR{'U', 'L'} // Unsigned long.
	US = VR{'U', 'S'} // Unsigned short.

	OW = VR{'O', 'W'} // Other word.
	OF = VR{'O', 'F'} // Other float.
	SQ = VR{'S', 'Q'} // Sequence of items.
	UT = VR{'U', 'T'} // Unlimited text.
	UN = VR{'U', 'N'} // Unknown.
)

func (vr VR) String() string {
	return string(vr[:])
}

// longForm reports whether the explicit VR header uses the
// 12-byte form with two reserved bytes and a 32-bit length.
func (vr VR) longForm() bool {
	switch vr {
	case OB, OW, OF, SQ, UT, UN:
		return true
	}
	return false
}

// padByte is appended to odd-length values to keep elements even.
func (vr VR) padByte() byte {
	if vr == UI || vr.longForm() {
		return 0x00
	}
	return ' '
}
