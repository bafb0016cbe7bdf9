package hexconv

import "math"

const hexDigits = "0123456789abcdef"

// hexTable maps ASCII characters to nibble values; non-hex characters map to 0.
var hexTable = func() (t [256]byte) {
	for i := 0; i < 10; i++ {
		t['0'+i] = byte(i)
	}
	for i := 0; i < 6; i++ {
		t['a'+i] = byte(10 + i)
		t['A'+i] = byte(10 + i)
	}
	return t
}()

// ParseDecimal parses an optionally negative decimal number with at most one
// '.' separator. Any other input, including the empty string, yields 0.
func ParseDecimal(s string) float64 {
	if s == "" {
		return 0
	}

	neg := 1.0
	if s[0] == '-' {
		s = s[1:]
		neg = -1
	}

	res := 0.0
	frac := 0
	dot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			res = res*10 + float64(c-'0')
		case c == '.' && !dot:
			dot = true
			frac = len(s) - i - 1
		default:
			return 0
		}
	}
	return res * neg / math.Pow10(frac)
}

// HexToBin decodes the hex string s into dst and returns the number of bytes
// written. Odd-length input is read as if prefixed with '0'. Characters that
// are not hex digits decode as 0. If dst is too short, only the first
// 2*len(dst) characters of s are decoded.
func HexToBin(s string, dst []byte) int {
	n := (len(s) + 1) >> 1
	if n > len(dst) {
		n = len(dst)
		s = s[:n<<1]
	}

	i, j := 0, 0
	if len(s)&1 == 1 {
		dst[0] = hexTable[s[0]]
		i, j = 1, 1
	}
	for ; i < len(s); i, j = i+2, j+1 {
		dst[j] = hexTable[s[i]]<<4 | hexTable[s[i+1]]
	}
	return n
}

// BinToHex encodes src as lowercase hex into dst followed by a NUL byte and
// returns the length of the encoded text. len(dst) includes the terminator;
// if dst is too short only whole bytes that fit are encoded. Empty src or
// dst yield 0 and dst is left untouched.
func BinToHex(src []byte, dst []byte) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}

	n := len(src) << 1
	if n >= len(dst) {
		n = (len(dst) - 1) &^ 1
		src = src[:n>>1]
	}

	j := 0
	for _, b := range src {
		dst[j] = hexDigits[b>>4]
		dst[j+1] = hexDigits[b&0xf]
		j += 2
	}
	dst[j] = 0
	return n
}

// DecodeHex returns the bytes encoded by s, following HexToBin's rules.
func DecodeHex(s string) []byte {
	dst := make([]byte, (len(s)+1)>>1)
	return dst[:HexToBin(s, dst)]
}

// EncodeHex returns the lowercase hex encoding of b.
func EncodeHex(b []byte) string {
	dst := make([]byte, len(b)<<1+1)
	return string(dst[:BinToHex(b, dst)])
}
