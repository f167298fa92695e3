package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BandCounts holds one Reg-B section: bottle counts per strength band and size.
type BandCounts map[StrengthBand]BottleCounts

// Count returns the count for one combination, zero when absent.
func (b BandCounts) Count(band StrengthBand, size BottleSize) int64 {
	return b[band][size]
}

// Set stores a count, allocating the band row as needed.
func (b BandCounts) Set(band StrengthBand, size BottleSize, n int64) {
	row, ok := b[band]
	if !ok {
		row = BottleCounts{}
		b[band] = row
	}
	row[size] = n
}

// RegBSection names the four count sections of the register.
type RegBSection string

const (
	SectionOpening RegBSection = "opening"
	SectionReceipt RegBSection = "receipt"
	SectionIssue   RegBSection = "issue"
	SectionWastage RegBSection = "wastage"
)

// SectionTotal is the BL/AL sum of one section.
type SectionTotal struct {
	Bl decimal.Decimal `json:"bl"`
	Al decimal.Decimal `json:"al"`
}

// RegBTotals holds the derived totals of a Reg-B entry.
type RegBTotals struct {
	Opening SectionTotal `json:"opening"`
	Receipt SectionTotal `json:"receipt"`
	Issue   SectionTotal `json:"issue"`
	Wastage SectionTotal `json:"wastage"`
	Closing SectionTotal `json:"closing"`
}

// BalanceCheck is the outcome of the Reg-B balance equation.
type BalanceCheck struct {
	Difference decimal.Decimal `json:"difference"`
	IsBalanced bool            `json:"isBalanced"`
}

// CountryLiquorIssueEntry is a daily Reg-B country-liquor issue record.
type CountryLiquorIssueEntry struct {
	EntryID   string    `json:"entryID"`
	EntryDate time.Time `json:"entryDate"`

	Opening BandCounts `json:"opening"`
	Receipt BandCounts `json:"receipt"`
	Issue   BandCounts `json:"issue"`
	Wastage BandCounts `json:"wastage"`

	// Derived
	Totals         RegBTotals      `json:"totals"`
	ProductionFees decimal.Decimal `json:"productionFees"`

	SourceRegAEntryID string `json:"sourceRegAEntryID,omitempty"`
	AuditFields
}

// Section returns the counts of the named section.
func (e *CountryLiquorIssueEntry) Section(s RegBSection) BandCounts {
	switch s {
	case SectionOpening:
		return e.Opening
	case SectionReceipt:
		return e.Receipt
	case SectionIssue:
		return e.Issue
	case SectionWastage:
		return e.Wastage
	}
	return nil
}
