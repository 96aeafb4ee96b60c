// Package daily picks a deterministic "word of the day" so every player
// gets the same target for a given date and length.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/ahnaf-chowdhury/wordmaster/internal/words"
)

// DefaultSalt is used when no salt is configured.
const DefaultSalt = "wordmaster"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD/length) % listLen.
func WordIndex(date time.Time, length int, salt string, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date) + "/" + strconv.Itoa(length)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(listLen))
}

// Pick returns the word of the day of the given length from src.
func Pick(src words.Source, length int, date time.Time, salt string) (string, error) {
	if salt == "" {
		salt = DefaultSalt
	}
	list, err := src.WordsOfLength(length)
	if err != nil {
		return "", err
	}
	return list[WordIndex(date, length, salt, len(list))], nil
}
