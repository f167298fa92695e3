package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/excise_register_app/internal/apperrors"
	"github.com/SscSPs/excise_register_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		isNil   bool
		wantErr bool
	}{
		{name: "plain day", input: `"2025-01-15"`, want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: `"2025-01-15T10:30:00Z"`, want: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)},
		{name: "null", input: `null`, isNil: true},
		{name: "garbage", input: `"15/01/2025"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				D *Date `json:"d"`
			}
			err := json.Unmarshal([]byte(`{"d":`+tt.input+`}`), &body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.isNil {
				assert.Nil(t, body.D)
				return
			}
			require.NotNil(t, body.D)
			assert.True(t, tt.want.Equal(body.D.Time))
		})
	}

	out, err := json.Marshal(Date{Time: time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(out))
}

func TestListParamsDateRange(t *testing.T) {
	rng, err := ListParams{From: "2025-01-01", To: "2025-01-31"}.DateRange()
	require.NoError(t, err)
	require.NotNil(t, rng.From)
	require.NotNil(t, rng.To)
	assert.Equal(t, 1, rng.From.Day())
	assert.Equal(t, 31, rng.To.Day())

	rng, err = ListParams{}.DateRange()
	require.NoError(t, err)
	assert.Nil(t, rng.From)
	assert.Nil(t, rng.To)

	_, err = ListParams{From: "2025-02-01", To: "2025-01-01"}.DateRange()
	assert.Error(t, err)

	_, err = ListParams{To: "yesterday"}.DateRange()
	assert.Error(t, err)
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidators(v))
	return v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRegisterValidators(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name       string
		req        any
		wantFields map[string]string
	}{
		{
			name:       "valid declaration",
			req:        DeclareBottlingRequest{BottleCounts: domain.BottleCounts{domain.Size750: 10}, AvgStrength: dec("42.8")},
			wantFields: map[string]string{},
		},
		{
			name: "strength above 100",
			req:  DeclareBottlingRequest{BottleCounts: domain.BottleCounts{domain.Size750: 10}, AvgStrength: dec("100.5")},
			wantFields: map[string]string{
				"avgStrength": "must be a percentage between 0 and 100",
			},
		},
		{
			name: "missing pointer decimal",
			req:  ReconcileMasterLedgerRequest{PhysicalClosingBl: dec("0")},
			wantFields: map[string]string{
				"physicalClosingAl": "is required",
			},
		},
		{
			name: "zero payment",
			req:  RecordDutyPaymentRequest{Amount: dec("0"), PaymentDate: &Date{Time: time.Now()}, ChallanNo: "CH-1"},
			wantFields: map[string]string{
				"amount": "must be greater than 0",
			},
		},
		{
			name: "unknown event type",
			req:  RecordVatEventRequest{VatCode: "V-1", EventDate: &Date{Time: time.Now()}, EventType: "SPILL"},
			wantFields: map[string]string{
				"eventType": "must be one of RECEIPT TRANSFER ADJUSTMENT QC_CLEARANCE ISSUE PRODUCTION",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			got := map[string]string{}
			for _, fe := range FieldErrors(err) {
				got[fe.Field] = fe.Message
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
	assert.Nil(t, FieldErrors(nil))
}

func TestCountryLiquorRequestToEntry(t *testing.T) {
	day := &Date{Time: time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)}
	src := "rega-1"

	t.Run("maps register columns", func(t *testing.T) {
		entry, err := CreateCountryLiquorIssueRequest{
			EntryDate:         day,
			Opening:           RegBSectionCounts{"count50_750": 100},
			Issue:             RegBSectionCounts{"count50_750": 40, "count80_180": 5},
			SourceRegAEntryID: &src,
		}.ToEntry()

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), entry.EntryDate)
		assert.Equal(t, int64(100), entry.Opening.Count(domain.Band50UP, domain.Size750))
		assert.Equal(t, int64(40), entry.Issue.Count(domain.Band50UP, domain.Size750))
		assert.Equal(t, int64(5), entry.Issue.Count(domain.Band80UP, domain.Size180))
		assert.Zero(t, entry.Receipt.Count(domain.Band50UP, domain.Size750))
		assert.Equal(t, "rega-1", entry.SourceRegAEntryID)
	})

	t.Run("reports unknown columns per section", func(t *testing.T) {
		_, err := CreateCountryLiquorIssueRequest{
			Receipt: RegBSectionCounts{"count55_750": 1},
		}.ToEntry()

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		var verrs apperrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fe.Field
		}
		assert.ElementsMatch(t, []string{"entryDate", "receipt.count55_750"}, fields)
	})
}
