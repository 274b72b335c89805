package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// RandSecretBase62 returns size random bytes encoded in base62
func RandSecretBase62(size int) string {
	buf := make([]byte, size)
	_, err := rand.Read(buf)
	if err != nil {
		panic(err)
	}
	var i big.Int
	return i.SetBytes(buf).Text(62)
}

// StringToUInt64 returns 0 for anything that isn't a positive number
func StringToUInt64(in string) uint64 {
	i, _ := strconv.ParseUint(in, 10, 64)
	return i
}

// FormatDate renders a unix timestamp the way posts show their date
func FormatDate(ts int64) string {
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).Format("2 Jan 2006")
}
