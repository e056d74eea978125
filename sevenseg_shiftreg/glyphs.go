package sevenseg_shiftreg

// SegmentPattern is the segment mask for one digit. Bit 7 is the decimal point.
type SegmentPattern uint8

// DisplayBuffer holds one pattern per digit position, leftmost digit first.
type DisplayBuffer []SegmentPattern

// positions of segments
const (
	LED_TOP     = 0
	LED_TOPR    = 1
	LED_BOTR    = 2
	LED_BOT     = 3
	LED_BOTL    = 4
	LED_TOPL    = 5
	LED_MID     = 6
	LED_DECIMAL = 7

	LED_DECIMAL_MASK SegmentPattern = 1 << LED_DECIMAL
)

// Unknown is shown for any character without a glyph: top, middle and
// bottom bars, so bad input never looks like a blank digit.
const Unknown SegmentPattern = 0x49

// translate characters to bitmasks
var digitValues = map[rune]SegmentPattern{
	' ': 0x00,
	'-': 0x40,
	'.': LED_DECIMAL_MASK,
	'0': 0x3F,
	'1': 0x06,
	'2': 0x5B,
	'3': 0x4F,
	'4': 0x66,
	'5': 0x6D,
	'6': 0x7D,
	'7': 0x07,
	'8': 0x7F,
	'9': 0x6F,
	'C': 0x39,
	'H': 0x76,
	't': 0x78,
}

// Encode returns the pattern for a single character.
func Encode(char rune) SegmentPattern {
	if val, ok := digitValues[char]; ok {
		return val
	}
	return Unknown
}

// Supported reports whether char has its own glyph.
func Supported(char rune) bool {
	_, ok := digitValues[char]
	return ok
}

// EncodeString maps msg to one pattern per digit. A '.' that follows a
// non-dot character lights that character's decimal point instead of
// taking a digit of its own.
func EncodeString(msg string) DisplayBuffer {
	chars := []rune(msg)
	buf := make(DisplayBuffer, 0, len(chars))
	for i := 0; i < len(chars); {
		mask := Encode(chars[i])
		if chars[i] != '.' && i+1 < len(chars) && chars[i+1] == '.' {
			buf = append(buf, mask|Encode('.'))
			i += 2
			continue
		}
		buf = append(buf, mask)
		i++
	}
	return buf
}

// Blank is a buffer of spaces for every digit.
func Blank(digits int) DisplayBuffer {
	buf := make(DisplayBuffer, digits)
	space := Encode(' ')
	for i := range buf {
		buf[i] = space
	}
	return buf
}

// Layout encodes msg right justified into exactly digits positions. Short
// strings are padded with blanks on the left, long ones keep their
// leftmost digits.
func Layout(msg string, digits int) DisplayBuffer {
	enc := EncodeString(msg)
	if len(enc) > digits {
		enc = enc[:digits]
	}
	buf := Blank(digits)
	copy(buf[digits-len(enc):], enc)
	return buf
}
