package address

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

const evmAddressHexLen = 40

// ValidEVM reports whether s is a 20-byte hex address with an optional 0x
// prefix. All-lowercase and all-uppercase addresses carry no checksum and are
// accepted; mixed-case addresses must match their EIP-55 checksum.
func ValidEVM(s string) bool {
	body := trimHexPrefix(s)
	if len(body) != evmAddressHexLen {
		return false
	}
	if _, err := hex.DecodeString(body); err != nil {
		return false
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return checksumHex(body) == body
}

// ChecksumEVM returns the EIP-55 form of a hex address, 0x-prefixed.
func ChecksumEVM(s string) (string, bool) {
	body := trimHexPrefix(s)
	if len(body) != evmAddressHexLen {
		return "", false
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", false
	}
	return "0x" + checksumHex(body), true
}

func checksumHex(body string) string {
	lower := strings.ToLower(body)

	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(lower))
	digest := hex.EncodeToString(h.Sum(nil))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && digest[i] >= '8' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
