package json

import "strconv"

// formatG renders f the way C's printf("%.*g", prec, f) does: up to prec
// significant digits, trailing zeros and a trailing bare decimal point
// trimmed. strconv's 'g' verb already trims trailing zeros this way when
// given an explicit precision, so this is a thin, named wrapper rather than
// a hand-rolled formatter.
func formatG(f float64, prec int) string {
	return strconv.FormatFloat(f, 'g', prec, 64)
}
