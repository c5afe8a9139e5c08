package drivers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLicenseValidOn(t *testing.T) {
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	driver := &Driver{LicenseExpiry: expiry}

	assert.True(t, driver.LicenseValidOn(time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, driver.LicenseValidOn(expiry), "expiry day itself is still valid")
	assert.False(t, driver.LicenseValidOn(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
