package grammar

func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func IsDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func IsIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func IsIdentPart(ch byte) bool {
	return IsIdentStart(ch) || IsDigit(ch)
}

// SkipSpace returns the first offset at or after pos that is not whitespace.
func SkipSpace(src string, pos int) int {
	for pos < len(src) && IsSpace(src[pos]) {
		pos++
	}
	return pos
}

// ReadIdent returns the end of the identifier starting at pos, or pos when
// none starts there.
func ReadIdent(src string, pos int) int {
	if pos >= len(src) || !IsIdentStart(src[pos]) {
		return pos
	}
	end := pos + 1
	for end < len(src) && IsIdentPart(src[end]) {
		end++
	}
	return end
}
