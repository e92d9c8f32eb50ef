package types

// Tier is the coarse confidence label of a secret type. It only breaks
// overlap ties; it never filters on its own.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Rank orders tiers so that a larger value wins a tie.
func (t Tier) Rank() int {
	switch t {
	case TierHigh:
		return 3
	case TierMedium:
		return 2
	case TierLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t.Rank() > 0
}

// ValidatorKind selects a validator variant.
type ValidatorKind string

const (
	ValidatorChecksum ValidatorKind = "checksum"
	ValidatorEntropy  ValidatorKind = "entropy"
	ValidatorContext  ValidatorKind = "context"
)

// ChecksumAlgorithm names a structural check used by checksum validators.
type ChecksumAlgorithm string

const (
	// ChecksumCRC32Base62 is the GitHub/npm token scheme: CRC32 of the
	// payload, base62-encoded into the last six characters.
	ChecksumCRC32Base62 ChecksumAlgorithm = "crc32_base62"
	// ChecksumAWSKeyID requires the body of an AWS key id to be base32.
	ChecksumAWSKeyID ChecksumAlgorithm = "aws_key_id"
	// ChecksumJWTHeader requires a decodable JSON header with an alg field.
	ChecksumJWTHeader ChecksumAlgorithm = "jwt_header"
)

// Format selects CLI output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)
