// Package format houses the wire-level constants of the item record format.
// The goal is to keep every magic width in one place so the walker, the codec
// and the engine agree on the layout without importing each other.
package format

var (
	// Signature is the two-byte container signature preceding every item body.
	// Layout:
	//   0x00  'J' 'M'
	Signature = []byte{'J', 'M'}
)

const (
	// SignatureSize is the size of the container signature in bytes.
	SignatureSize = 2

	// BitsPerByte is used for alignment of the item body.
	BitsPerByte = 8

	// ByteAlignMask is the mask for aligning a bit count to a byte boundary.
	ByteAlignMask = BitsPerByte - 1

	// MaxFieldBits is the widest field a single read may return.
	MaxFieldBits = 64
)

// Property list layout.
const (
	// PropertyIDBits is the width of every property id, including the sentinel.
	PropertyIDBits = 9

	// SentinelID terminates a property list (nine set bits, no payload).
	SentinelID = 1<<PropertyIDBits - 1 // 511

	// MaxValueBits and MaxParamBits bound what a definition table may declare.
	MaxValueBits = 32
	MaxParamBits = 32
)

// Stat ids whose widths drive base-dependent header fields.
const (
	StatDefense       = 31
	StatDurability    = 72
	StatMaxDurability = 73
)

// ============================================================================
// Header field widths, in read order
// ============================================================================.
const (
	// Flag block. Reserved runs are skipped by the walker.
	FlagQuestBits      = 1
	FlagReserved1Bits  = 3
	FlagIdentifiedBits = 1
	FlagReserved2Bits  = 5
	FlagDupedBits      = 1
	FlagSocketedBits   = 1
	FlagReserved3Bits  = 2
	FlagIllegalBits    = 2 // illegal-equip + unknown
	FlagEarBits        = 1
	FlagStarterBits    = 1
	FlagReserved4Bits  = 3
	FlagSimpleBits     = 1
	FlagEtherealBits   = 1
	FlagReserved5Bits  = 1
	FlagPersonalBits   = 1
	FlagReserved6Bits  = 1
	FlagRunewordBits   = 1
	FlagReserved7Bits  = 5

	VersionBits   = 8
	Reserved8Bits = 2
	LocationBits  = 3
	EquippedBits  = 4
	ColumnBits    = 4
	RowBits       = 4
	StorageBits   = 3

	// Ear payload.
	EarClassBits = 3
	EarLevelBits = 7

	// TypeCodeChars characters of TypeCodeCharBits each.
	TypeCodeChars    = 4
	TypeCodeCharBits = 8

	// Extended block.
	SocketsFilledBits   = 3
	GUIDBits            = 32
	LevelBits           = 7
	QualityBits         = 4
	GraphicFlagBits     = 1
	GraphicBits         = 3
	AutoprefixFlagBits  = 1
	AutoprefixBits      = 11
	LowHighQualityBits  = 3
	MagicAffixBits      = 22 // prefix 11 + suffix 11
	SetUniqueIDBits     = 15
	RareNameBits        = 16 // two 8-bit name ids
	RareAffixSlots      = 6
	RareAffixBits       = 11
	HonorificBits       = 16
	RunewordCodeBits    = 16
	NameCharBits        = 7
	MaxNameChars        = 16
	TomeBits            = 1
	QuantityBits        = 9
	SocketCountBits     = 4
	SetListFlagBits     = 5
)
