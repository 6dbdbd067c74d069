// internal/services/identifier.go
package services

import (
	"strings"

	"github.com/gpstracker/inventory-backend/internal/apperrors"
	"github.com/gpstracker/inventory-backend/internal/models"
)

// DeriveIdentifiers selects which single identifier field an inventory item
// may populate, driven by the owning product's category. It runs on every
// create and update immediately before persistence.
//
// The overwrite-then-validate order matters: the required identifier for
// trackers and SIMs must be present (InvalidState otherwise), while values
// supplied for the wrong category are silently discarded, not rejected.
func DeriveIdentifiers(category models.ProductCategory, imei, iccid, serialNumber string) (*string, *string, *string, error) {
	imei = strings.TrimSpace(imei)
	iccid = strings.TrimSpace(iccid)
	serialNumber = strings.TrimSpace(serialNumber)

	switch category {
	case models.CategoryGPSTracker:
		if imei == "" {
			return nil, nil, nil, apperrors.InvalidState("IMEI is required for GPS_TRACKER products")
		}
		return &imei, nil, nil, nil
	case models.CategorySIMCard:
		if iccid == "" {
			return nil, nil, nil, apperrors.InvalidState("ICCID is required for SIM_CARD products")
		}
		return nil, &iccid, nil, nil
	case models.CategoryAccessory:
		// Serial numbers are optional for accessories.
		if serialNumber == "" {
			return nil, nil, nil, nil
		}
		return nil, nil, &serialNumber, nil
	default:
		// BUNDLE and OTHER carry no unit-level identifier.
		return nil, nil, nil, nil
	}
}
