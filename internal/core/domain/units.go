package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BottleSize is a bottle capacity in millilitres.
type BottleSize int

const (
	Size750 BottleSize = 750
	Size600 BottleSize = 600
	Size500 BottleSize = 500
	Size375 BottleSize = 375
	Size300 BottleSize = 300
	Size180 BottleSize = 180
)

// BottleSizes lists every size tracked by the production registers, largest first.
var BottleSizes = []BottleSize{Size750, Size600, Size500, Size375, Size300, Size180}

// IsValid reports whether s is a tracked bottle size.
func (s BottleSize) IsValid() bool {
	for _, known := range BottleSizes {
		if s == known {
			return true
		}
	}
	return false
}

// Liters returns the capacity of one bottle in bulk liters.
func (s BottleSize) Liters() decimal.Decimal {
	return decimal.New(int64(s), -3)
}

// BottleCounts is a per-size bottle count. Missing sizes count as zero.
type BottleCounts map[BottleSize]int64

// Total returns the number of bottles across all sizes.
func (c BottleCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

// StrengthBand is a country-liquor strength grade in degrees under proof.
type StrengthBand int

const (
	Band50UP StrengthBand = 50
	Band60UP StrengthBand = 60
	Band70UP StrengthBand = 70
	Band80UP StrengthBand = 80
)

// StrengthBands lists the bands in Reg-B column order.
var StrengthBands = []StrengthBand{Band50UP, Band60UP, Band70UP, Band80UP}

var bandStrength = map[StrengthBand]decimal.Decimal{
	Band50UP: decimal.RequireFromString("28.5"),
	Band60UP: decimal.RequireFromString("22.8"),
	Band70UP: decimal.RequireFromString("17.1"),
	Band80UP: decimal.RequireFromString("11.4"),
}

// IsValid reports whether b is a tracked band.
func (b StrengthBand) IsValid() bool {
	_, ok := bandStrength[b]
	return ok
}

// Strength returns the fixed v/v percentage for the band, or zero for an unknown band.
func (b StrengthBand) Strength() decimal.Decimal {
	return bandStrength[b]
}

func (b StrengthBand) String() string {
	return fmt.Sprintf("%dUP", int(b))
}

// RegBCombination is one (band, size) column of the Reg-B register.
type RegBCombination struct {
	Band StrengthBand
	Size BottleSize
	// Field is the register column name, e.g. "count50_750".
	Field string
}

// RegBCombinations is the static 24-column table of the Reg-B register,
// built once in band-major order.
var RegBCombinations = func() []RegBCombination {
	combos := make([]RegBCombination, 0, len(StrengthBands)*len(BottleSizes))
	for _, band := range StrengthBands {
		for _, size := range BottleSizes {
			combos = append(combos, RegBCombination{
				Band:  band,
				Size:  size,
				Field: fmt.Sprintf("count%d_%d", int(band), int(size)),
			})
		}
	}
	return combos
}()
