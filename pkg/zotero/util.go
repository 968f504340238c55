package zotero

import (
	"math/rand"
	"regexp"
	"strings"
)

// https://github.com/zotero/dataserver/blob/master/model/DataObjectUtilities.inc.php#L63
const keyChars = "23456789ABCDEFGHIJKLMNPQRSTUVWXYZ"

var keyRegexp = regexp.MustCompile(`^[23456789ABCDEFGHIJKLMNPQRSTUVWXYZ]{8}$`)

// CreateKey returns a new object key in the format of the service.
func CreateKey() string {
	return randomString(8, keyChars)
}

// IsKey reports whether key looks like a key created by the service or by CreateKey.
func IsKey(key string) bool {
	return keyRegexp.MatchString(key)
}

func randomString(length int, chars string) string {
	b := strings.Builder{}
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(chars[rand.Intn(len(chars))])
	}
	return b.String()
}
