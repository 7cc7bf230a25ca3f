package notes

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies note content.
type Fingerprint uint64

// Sum fingerprints content.
func Sum(content string) Fingerprint {
	return Fingerprint(xxhash.Sum64String(content))
}

func (f Fingerprint) String() string {
	return strconv.FormatUint(uint64(f), 16)
}
