package util

import (
	//nolint:gosec // md5 only derives stable object names, never used for integrity.
	"crypto/md5"
	"encoding/hex"
	"sort"
)

// MD5Hex returns the 32 character lowercase hex digest of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Truncate returns at most the first n characters of s.
// Characters are counted as runes, not bytes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
