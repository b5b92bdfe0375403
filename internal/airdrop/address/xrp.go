// Package address validates the address formats of the source and destination chains.
package address

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	rippleAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	xrpAccountIDVersion = 0x00
	xrpAccountIDLen     = 20
	xrpChecksumLen      = 4

	xrpMinAddressLen = 25
	xrpMaxAddressLen = 35

	// prefix, account id, tag flag, little-endian 64-bit tag
	xAddressPayloadLen = 2 + xrpAccountIDLen + 1 + 8
)

var (
	xAddressMainnetPrefix = []byte{0x05, 0x44}
	xAddressTestnetPrefix = []byte{0x04, 0x93}
)

// rippleToBitcoin maps the ripple base58 alphabet onto the bitcoin one so the
// btcutil decoder can be reused. Both alphabets share the same character set.
var rippleToBitcoin = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(rippleAlphabet))
	for i := 0; i < len(rippleAlphabet); i++ {
		pairs = append(pairs, rippleAlphabet[i:i+1], bitcoinAlphabet[i:i+1])
	}
	return strings.NewReplacer(pairs...)
}()

// ValidXRP reports whether s is an XRP Ledger account address, either in the
// classic form or as an X-address.
func ValidXRP(s string) bool {
	_, ok := AccountID(s)
	return ok
}

// AccountID returns the 20-byte account id behind a classic address or an
// X-address. Both forms of the same account yield the same id.
func AccountID(s string) ([]byte, bool) {
	if id, ok := DecodeXRP(s); ok {
		return id, true
	}
	return DecodeXAddress(s)
}

// DecodeXRP returns the 20-byte account id encoded in a classic XRP address:
// ripple base58, version byte 0x00 and a 4-byte double SHA-256 checksum.
func DecodeXRP(s string) ([]byte, bool) {
	if len(s) < xrpMinAddressLen || len(s) > xrpMaxAddressLen || s[0] != 'r' {
		return nil, false
	}

	payload, ok := decodeChecked(s, 1+xrpAccountIDLen)
	if !ok || payload[0] != xrpAccountIDVersion {
		return nil, false
	}
	return append([]byte(nil), payload[1:]...), true
}

// DecodeXAddress returns the account id of an X-address (mainnet or testnet).
// Tags wider than 32 bits and tag bytes without the tag flag are rejected.
func DecodeXAddress(s string) ([]byte, bool) {
	payload, ok := decodeChecked(s, xAddressPayloadLen)
	if !ok {
		return nil, false
	}

	prefix := payload[:2]
	if !bytes.Equal(prefix, xAddressMainnetPrefix) && !bytes.Equal(prefix, xAddressTestnetPrefix) {
		return nil, false
	}

	accountID := payload[2 : 2+xrpAccountIDLen]
	flag := payload[2+xrpAccountIDLen]
	tag := payload[3+xrpAccountIDLen:]
	switch flag {
	case 0:
		if !allZero(tag) {
			return nil, false
		}
	case 1:
		if !allZero(tag[4:]) {
			return nil, false
		}
	default:
		return nil, false
	}
	return append([]byte(nil), accountID...), true
}

func decodeChecked(s string, payloadLen int) ([]byte, bool) {
	decoded := base58.Decode(rippleToBitcoin.Replace(s))
	if len(decoded) != payloadLen+xrpChecksumLen {
		return nil, false
	}

	payload := decoded[:payloadLen]
	checksum := chainhash.DoubleHashB(payload)[:xrpChecksumLen]
	if !bytes.Equal(checksum, decoded[payloadLen:]) {
		return nil, false
	}
	return payload, true
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
