package helpers

import (
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var references = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// FormatAmount renders a decimal amount with two fixed decimals and no
// thousands separator, e.g. 19.99 or 20.00.
func FormatAmount(n float64) string {
	return humanize.FormatFloat("###.##", n)
}

// IsTruthy reports whether a submitted checkbox value means "checked".
func IsTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on", "1", "true":
		return true
	}

	return false
}

func StrCapRandom(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(length)))
	b := make([]rune, length)
	for i := range b {
		b[i] = references[r.Intn(len(references))]
	}

	return string(b)
}
