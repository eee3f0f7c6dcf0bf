package pwgen

// Accept reports whether c may be appended to built under the constraints in
// s. Only the last accepted character is consulted for the sequential check;
// runs such as "abc" are blocked because every adjacent pair is checked when
// it is formed.
func Accept(s Settings, built []rune, c rune) bool {
	if !s.AllowDuplicates {
		for _, prev := range built {
			if prev == c {
				return false
			}
		}
	}
	if !s.AllowSequential && len(built) > 0 {
		last := built[len(built)-1]
		if c == last+1 || c == last-1 {
			return false
		}
	}
	// Alphabet already drops these; checked again so Accept holds on its own.
	if s.ExcludeSimilar && isSimilar(c) {
		return false
	}
	return true
}
