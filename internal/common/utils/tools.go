package utils

import (
	"encoding/base64"
	"encoding/binary"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const AlphaNum = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID utils func: for 12-digit random id generation
func GenerateID() string {
	idLength := 12
	stringBuilder := strings.Builder{}
	for i := 0; i < idLength; i++ {
		index := rand.Intn(36)
		stringBuilder.WriteRune(rune(AlphaNum[index]))
	}
	return stringBuilder.String()
}

var pid = uint32(time.Now().UnixNano() % 4294967291)

// NewReqID for generate req id
func NewReqID() string {
	var b [12]byte
	binary.LittleEndian.PutUint32(b[:], pid)
	binary.LittleEndian.PutUint64(b[4:], uint64(time.Now().UnixNano()))
	return base64.URLEncoding.EncodeToString(b[:])
}

// Capitalize upper-cases the first rune, for display values like
// "new" -> "New", "screening" -> "Screening".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ClampLimit keeps a page size inside [1, max], falling back to max
// when the caller passes zero or a negative value.
func ClampLimit(limit, max int) int {
	if limit < 1 || limit > max {
		return max
	}
	return limit
}
