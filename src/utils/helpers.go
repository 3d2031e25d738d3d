package utils

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"
	"tbs/src/config"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds the human-facing payment reference:
// BE-<base36 unix-ms>-<6 random base36 chars>. No central counter is
// consulted, so numbers can be produced offline; uniqueness is probabilistic
// and a duplicate surfaces as an insert conflict on orders.order_number.
func GenerateOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	var sb strings.Builder
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			log.Printf("Error reading random bytes: %s\n", err.Error())
			n = big.NewInt(time.Now().UnixNano() % int64(len(base36Alphabet)))
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}
	return fmt.Sprintf("%s-%s-%s", config.ORDER_NUMBER_PREFIX, timestamp, sb.String())
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
