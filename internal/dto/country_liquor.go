package dto

import (
	"fmt"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegBSectionCounts holds one Reg-B section keyed by register column,
// e.g. {"count50_750": 100}.
type RegBSectionCounts map[string]int64

// CreateCountryLiquorIssueRequest is a daily Reg-B entry.
type CreateCountryLiquorIssueRequest struct {
	EntryDate *Date `json:"entryDate" binding:"required" swaggertype:"string" format:"date"`

	Opening RegBSectionCounts `json:"opening,omitempty"`
	Receipt RegBSectionCounts `json:"receipt,omitempty"`
	Issue   RegBSectionCounts `json:"issue,omitempty"`
	Wastage RegBSectionCounts `json:"wastage,omitempty"`

	// DeclaredClosingBl is the closing stock as counted; when present it must agree with the computed closing.
	DeclaredClosingBl *decimal.Decimal `json:"declaredClosingBl,omitempty" swaggertype:"number"`

	// SourceRegAEntryID adds a completed Reg-A session's bottles to the receipt section.
	SourceRegAEntryID *string `json:"sourceRegAEntryID,omitempty"`
}

var regBColumns = func() map[string]domain.RegBCombination {
	m := make(map[string]domain.RegBCombination, len(domain.RegBCombinations))
	for _, c := range domain.RegBCombinations {
		m[c.Field] = c
	}
	return m
}()

// ToEntry converts the request into an unsaved Reg-B entry. Unknown column
// names are reported per section.
func (r CreateCountryLiquorIssueRequest) ToEntry() (domain.CountryLiquorIssueEntry, error) {
	var errs apperrors.ValidationErrors
	if r.EntryDate == nil || r.EntryDate.IsZero() {
		errs.Add("entryDate", "is required")
	}
	e := domain.CountryLiquorIssueEntry{
		Opening: toBandCounts(&errs, domain.SectionOpening, r.Opening),
		Receipt: toBandCounts(&errs, domain.SectionReceipt, r.Receipt),
		Issue:   toBandCounts(&errs, domain.SectionIssue, r.Issue),
		Wastage: toBandCounts(&errs, domain.SectionWastage, r.Wastage),
	}
	if r.EntryDate != nil {
		e.EntryDate = domain.TruncateToDate(r.EntryDate.Time)
	}
	if r.SourceRegAEntryID != nil {
		e.SourceRegAEntryID = *r.SourceRegAEntryID
	}
	return e, errs.Err()
}

func toBandCounts(errs *apperrors.ValidationErrors, section domain.RegBSection, in RegBSectionCounts) domain.BandCounts {
	out := domain.BandCounts{}
	for field, n := range in {
		combo, ok := regBColumns[field]
		if !ok {
			errs.Add(fmt.Sprintf("%s.%s", section, field), "unknown register column")
			continue
		}
		out.Set(combo.Band, combo.Size, n)
	}
	return out
}

// ListCountryLiquorIssuesResponse is one page of Reg-B entries.
type ListCountryLiquorIssuesResponse struct {
	Entries   []domain.CountryLiquorIssueEntry `json:"entries"`
	NextToken *string                          `json:"nextToken,omitempty"`
}
