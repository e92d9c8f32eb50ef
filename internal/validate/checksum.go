package validate

import (
	"bytes"
	"encoding/base64"
	"hash/crc32"

	"github.com/tidwall/gjson"

	"github.com/suryansh-23/secretsieve/internal/types"
)

func checksum(alg types.ChecksumAlgorithm, raw []byte) bool {
	switch alg {
	case types.ChecksumCRC32Base62:
		return crc32Base62(raw)
	case types.ChecksumAWSKeyID:
		return awsKeyID(raw)
	case types.ChecksumJWTHeader:
		return jwtHeader(raw)
	default:
		return false
	}
}

// crc32Base62 checks tokens of the form prefix_payload where the last six
// characters of the payload are the base62 CRC32 of the rest.
func crc32Base62(token []byte) bool {
	_, suf, ok := bytes.Cut(token, []byte("_"))
	if !ok || len(suf) <= 6 {
		return false
	}
	split := len(suf) - 6
	content, sum := suf[:split], suf[split:]
	return bytes.Equal(base62Encode(crc32.ChecksumIEEE(content), 6), sum)
}

const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// base62Encode writes n into size characters, dropping any overflow.
func base62Encode(n uint32, size int) []byte {
	out := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		out[i] = base62Chars[n%62]
		n /= 62
	}
	return out
}

// awsKeyID requires the 16 characters after the four-letter prefix to be
// RFC 4648 base32, which AWS uses to encode the account and key material.
func awsKeyID(raw []byte) bool {
	if len(raw) != 20 {
		return false
	}
	for _, b := range raw[4:] {
		switch {
		case b >= 'A' && b <= 'Z':
		case b >= '2' && b <= '7':
		default:
			return false
		}
	}
	return true
}

// jwtHeader requires the first segment to decode to a JSON object with a
// string alg.
func jwtHeader(raw []byte) bool {
	head, _, ok := bytes.Cut(raw, []byte("."))
	if !ok || len(head) == 0 {
		return false
	}
	decoded := make([]byte, base64.RawURLEncoding.DecodedLen(len(head)))
	n, err := base64.RawURLEncoding.Decode(decoded, bytes.TrimRight(head, "="))
	if err != nil {
		return false
	}
	decoded = decoded[:n]
	if !gjson.ValidBytes(decoded) {
		return false
	}
	return gjson.GetBytes(decoded, "alg").Type == gjson.String
}

// SignCRC32Base62 returns prefix_payload followed by the six-character
// checksum accepted by the crc32_base62 algorithm.
func SignCRC32Base62(prefix, payload string) string {
	return prefix + "_" + payload + string(base62Encode(crc32.ChecksumIEEE([]byte(payload)), 6))
}
