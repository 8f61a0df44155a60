package utils

import (
	"testing"

	"condopark/internal/entities"
	apperrors "condopark/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONName(t *testing.T) {
	for in, want := range map[string]string{
		"AvailableFrom": "available_from",
		"SlotID":        "slot_id",
		"TenantID":      "tenant_id",
		"Rate":          "rate",
		"ParkerName":    "parker_name",
	} {
		assert.Equal(t, want, jsonName(in), in)
	}
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(entities.LoginRequest{Email: "a@b.c", Password: "x"}))

	err := ValidateStruct(entities.LoginRequest{Email: "a@b.c"})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	assert.Equal(t, "is required", verr.Message)

	negative := int64(-1)
	err = ValidateStruct(entities.SlotDescriptor{
		TenantName: "T", Tower: "A", Floor: "1", SlotNumber: "1",
		RateType: entities.RateHourly, Rate: &negative,
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rate", verr.Field)
	assert.Contains(t, verr.Message, "greater than or equal to 0")
}

func TestNormalizeRateType(t *testing.T) {
	cases := map[entities.RateType]entities.RateType{
		"Hourly":         entities.RateHourly,
		"per-hour":       entities.RateHourly,
		" overnight ":    entities.RateOvernightFlat,
		"Overnight Flat": entities.RateOvernightFlat,
		"DAILY":          entities.RateDaily,
		"Weekly":         "weekly",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeRateType(in), string(in))
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "parker@example.com", NormalizeEmail("  Parker@Example.COM "))
}
