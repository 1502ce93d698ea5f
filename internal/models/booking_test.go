package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The upstream compares status strings byte-for-byte, so the wire form
// must stay upper-cased with spaces.
func TestBookingStatus_WireFormat(t *testing.T) {
	b, err := json.Marshal(StatusCheckedIn)
	assert.NoError(t, err)
	assert.Equal(t, `"CHECKED IN"`, string(b))

	b, err = json.Marshal(StatusCheckedOut)
	assert.NoError(t, err)
	assert.Equal(t, `"CHECKED OUT"`, string(b))

	var s BookingStatus
	assert.NoError(t, json.Unmarshal([]byte(`"CHECKED IN"`), &s))
	assert.Equal(t, StatusCheckedIn, s)

	assert.Error(t, json.Unmarshal([]byte(`"CHECKED_IN"`), &s))
}
