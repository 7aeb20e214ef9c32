package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomAPIKey generates API key material in prefix.secret form. The
// prefix is stored in clear for lookup, the full key only as a bcrypt hash.
func RandomAPIKey() (prefix, key string) {
	prefix = RandomString(8)
	return prefix, fmt.Sprintf("%s.%s", prefix, RandomString(16))
}

// RandomTicker generates a random ticker symbol
func RandomTicker() string {
	return strings.ToUpper(RandomString(4))
}

// RandomEmail generates a random email
func RandomEmail() string {
	return fmt.Sprintf("%s@email.com", RandomString(6))
}
