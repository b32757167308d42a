package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecision_Approve(t *testing.T) {
	slotID, userID, approve, ok := ParseDecision(ApproveCallback(5, 100))

	require.True(t, ok)
	assert.True(t, approve)
	assert.Equal(t, int64(5), slotID)
	assert.Equal(t, int64(100), userID)
}

func TestParseDecision_Reject(t *testing.T) {
	slotID, userID, approve, ok := ParseDecision(RejectCallback(7, 200))

	require.True(t, ok)
	assert.False(t, approve)
	assert.Equal(t, int64(7), slotID)
	assert.Equal(t, int64(200), userID)
}

func TestParseDecision_Unrelated(t *testing.T) {
	cases := []string{
		"",
		"main_menu",
		"slot_5",
		"approve_",
		"approve_5",
		"approve_5_abc",
		"reject_x_100",
		"approve_5_100_extra",
	}

	for _, data := range cases {
		_, _, _, ok := ParseDecision(data)
		assert.False(t, ok, "data %q", data)
	}
}
