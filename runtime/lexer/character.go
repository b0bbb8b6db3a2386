package lexer

// ASCII character lookup tables for fast classification (zero-allocation)
//
// Use inline bounds-checked lookups:
//
//	if ch < 128 && isDigit[ch] { ... }
var (
	isDigit     [128]bool // 0-9
	isSeparator [128]bool // decimal point: '.' or ','
	isSign      [128]bool // '+' or '-'
)

// PlusMinus is the Unicode ± sign, accepted wherever an ASCII sign is.
const PlusMinus = '±'

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)

		isDigit[i] = '0' <= ch && ch <= '9'
		isSeparator[i] = ch == '.' || ch == ','
		isSign[i] = ch == '+' || ch == '-'
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= 0 && r < 128 && isDigit[r]
}

// IsSeparator reports whether r is a decimal separator ('.' or ',').
func IsSeparator(r rune) bool {
	return r >= 0 && r < 128 && isSeparator[r]
}

// IsSign reports whether r starts a tolerance: '+', '-' or '±'.
func IsSign(r rune) bool {
	if r == PlusMinus {
		return true
	}
	return r >= 0 && r < 128 && isSign[r]
}

// DigitValue returns the numeric value of an ASCII digit.
func DigitValue(r rune) int {
	return int(r - '0')
}
