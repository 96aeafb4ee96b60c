package game

// LetterCounts maps a letter to how many of it are still unclaimed in the target.
// A letter whose count reaches zero is deleted, so presence means availability.
type LetterCounts map[rune]int

// CountLetters builds a fresh LetterCounts from word.
func CountLetters(word string) LetterCounts {
	lc := make(LetterCounts, len(word))
	for _, r := range word {
		lc[r]++
	}
	return lc
}

// Take claims one occurrence of r. It returns false if none is available.
func (lc LetterCounts) Take(r rune) bool {
	n, ok := lc[r]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(lc, r)
	} else {
		lc[r] = n - 1
	}
	return true
}

// Empty reports whether every letter has been claimed.
func (lc LetterCounts) Empty() bool { return len(lc) == 0 }
