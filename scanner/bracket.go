package scanner

// MatchBracket finds the ')' closing the '(' at position open of text.
// Brackets nest; all other bytes are skipped. It returns the position of the
// closing bracket, or false if text[open] is not '(' or if the bracket is
// left open.
func MatchBracket(text []byte, open int) (int, bool) {
	if open < 0 || open >= len(text) || text[open] != '(' {
		return -1, false
	}
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}
