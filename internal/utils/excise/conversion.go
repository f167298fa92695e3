// Package excise holds the pure spirit-accounting calculations shared by the
// register services. Nothing here performs I/O; every function is safe to call
// concurrently and returns the same result for the same input.
package excise

import (
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds a derived quantity to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// BottlesToVolume converts per-size bottle counts to bulk liters.
// Terms are summed exactly and only the total is rounded.
func BottlesToVolume(counts domain.BottleCounts) decimal.Decimal {
	total := decimal.Zero
	for size, n := range counts {
		total = total.Add(decimal.NewFromInt(n).Mul(size.Liters()))
	}
	return Round2(total)
}

// VolumeToAbsolute converts bulk liters at a v/v strength percentage to absolute liters.
func VolumeToAbsolute(bl, strengthPercent decimal.Decimal) decimal.Decimal {
	return Round2(bl.Mul(strengthPercent).Div(hundred))
}

// MassToVolume converts a mass in kg at a density in gm/cc to bulk liters.
// A non-positive density yields zero; callers flag it as a data-quality issue.
func MassToVolume(massKg, densityGmPerCc decimal.Decimal) decimal.Decimal {
	if !densityGmPerCc.IsPositive() {
		return decimal.Zero
	}
	return Round2(massKg.Div(densityGmPerCc))
}

// AbsoluteToVolume is the inverse of VolumeToAbsolute; a non-positive strength yields zero.
func AbsoluteToVolume(al, strengthPercent decimal.Decimal) decimal.Decimal {
	if !strengthPercent.IsPositive() {
		return decimal.Zero
	}
	return Round2(al.Mul(hundred).Div(strengthPercent))
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
