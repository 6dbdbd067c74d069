// internal/services/identifier_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
)

func TestDeriveIdentifiers(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name         string
		category     models.ProductCategory
		imei         string
		iccid        string
		serialNumber string
		wantImei     *string
		wantIccid    *string
		wantSerial   *string
	}{
		{
			name:     "gps tracker keeps imei only",
			category: models.CategoryGPSTracker,
			imei:     "123456789012345",
			wantImei: str("123456789012345"),
		},
		{
			name:         "gps tracker discards iccid and serial",
			category:     models.CategoryGPSTracker,
			imei:         "123456789012345",
			iccid:        "89014103211118510720",
			serialNumber: "SN-001",
			wantImei:     str("123456789012345"),
		},
		{
			name:      "sim card keeps iccid only",
			category:  models.CategorySIMCard,
			imei:      "123456789012345",
			iccid:     "89014103211118510720",
			wantIccid: str("89014103211118510720"),
		},
		{
			name:         "accessory keeps serial only",
			category:     models.CategoryAccessory,
			imei:         "123456789012345",
			serialNumber: "SN-001",
			wantSerial:   str("SN-001"),
		},
		{
			name:     "accessory without serial is fine",
			category: models.CategoryAccessory,
		},
		{
			name:         "bundle clears everything",
			category:     models.CategoryBundle,
			imei:         "123456789012345",
			iccid:        "89014103211118510720",
			serialNumber: "SN-001",
		},
		{
			name:         "other clears everything",
			category:     models.CategoryOther,
			serialNumber: "SN-001",
		},
		{
			name:     "imei is trimmed",
			category: models.CategoryGPSTracker,
			imei:     "  123456789012345  ",
			wantImei: str("123456789012345"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			imei, iccid, serial, err := DeriveIdentifiers(tc.category, tc.imei, tc.iccid, tc.serialNumber)
			require.NoError(t, err)
			assert.Equal(t, tc.wantImei, imei)
			assert.Equal(t, tc.wantIccid, iccid)
			assert.Equal(t, tc.wantSerial, serial)
		})
	}
}

func TestDeriveIdentifiersMissingRequired(t *testing.T) {
	_, _, _, err := DeriveIdentifiers(models.CategoryGPSTracker, "", "89014103211118510720", "SN-001")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
	assert.Contains(t, err.Error(), "IMEI is required")

	_, _, _, err = DeriveIdentifiers(models.CategorySIMCard, "123456789012345", "", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
	assert.Contains(t, err.Error(), "ICCID is required")

	// Whitespace-only counts as absent.
	_, _, _, err = DeriveIdentifiers(models.CategoryGPSTracker, "   ", "", "")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}
