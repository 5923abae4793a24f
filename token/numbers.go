package token

// number scans a number starting at the beginning of d, which must not
// include a leading minus sign.  It returns the number of bytes consumed
// and whether the number is a float.
//
// A fraction marks a float.  An exponent is accepted with an optional
// sign, but only a negative exponent marks a float: 2e3 and 2E+3 are
// integers.
func number(d []byte) (int, bool) {
	n := asciiDigits(d)
	float := false
	if n < len(d) && d[n] == '.' {
		float = true
		n++
		n += asciiDigits(d[n:])
	}
	if n < len(d) && (d[n] == 'e' || d[n] == 'E') {
		n++
		if n < len(d) && (d[n] == '-' || d[n] == '+') {
			if d[n] == '-' {
				float = true
			}
			n++
		}
		n += asciiDigits(d[n:])
	}
	return n, float
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func asciiAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func asciiSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}
