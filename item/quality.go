package item

import "fmt"

// Quality is the 4-bit quality field of extended items.
type Quality uint8

const (
	QualityLow Quality = iota + 1
	QualityNormal
	QualityHigh
	QualityMagic
	QualitySet
	QualityRare
	QualityUnique
	QualityCrafted
	QualityHonorific
)

var qualityNames = map[Quality]string{
	QualityLow:       "low",
	QualityNormal:    "normal",
	QualityHigh:      "superior",
	QualityMagic:     "magic",
	QualitySet:       "set",
	QualityRare:      "rare",
	QualityUnique:    "unique",
	QualityCrafted:   "crafted",
	QualityHonorific: "honorific",
}

// Valid reports whether q is a known quality.
func (q Quality) Valid() bool {
	_, ok := qualityNames[q]
	return ok
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quality(%d)", uint8(q))
}
