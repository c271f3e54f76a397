package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExpiry(t *testing.T) {
	tests := []struct {
		name   string
		expiry Date
		want   ExpiryStatus
	}{
		{"no date", Date{}, StatusNoExpiry},
		{"yesterday", day(-1), StatusExpired},
		{"today", day(0), StatusExpiringSoon},
		{"in three days", day(3), StatusExpiringSoon},
		{"in four days", day(4), StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExpiry(tt.expiry, testNow))
		})
	}
}

func TestDaysUntil_TodayIsZero(t *testing.T) {
	days, ok := DaysUntil(day(0), testNow)
	require.True(t, ok)
	assert.Equal(t, 0, days)
}

func TestDaysUntil_RoundsUp(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	expiry := NewDate(now.Add(25 * time.Hour))

	days, ok := DaysUntil(expiry, now)
	require.True(t, ok)
	assert.Equal(t, 2, days)
}

func TestNewProductView(t *testing.T) {
	v := NewProductView(Product{ID: 1, ExpiryDate: day(4)}, testNow)
	assert.Equal(t, StatusFresh, v.Status)
	require.NotNil(t, v.DaysLeft)
	assert.Equal(t, 4, *v.DaysLeft)

	v = NewProductView(Product{ID: 2}, testNow)
	assert.Equal(t, StatusNoExpiry, v.Status)
	assert.Nil(t, v.DaysLeft)
}

func TestDate_UnmarshalFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"2025-03-12"`, "2025-03-12"},
		{`"2025-03-12T08:15:00"`, "2025-03-12"},
		{`"2025-03-12T08:15:00.123456"`, "2025-03-12"},
		{`"2025-03-12T08:15:00Z"`, "2025-03-12"},
		{`null`, ""},
		{`""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestProduct_JSONRoundTripKeepsNullExpiry(t *testing.T) {
	data, err := json.Marshal(Product{ID: 7, Name: "honey"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"expiry_date":null`)

	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"x","price":2,"quantity":1,"expiry_date":"2025-03-12","vendor_id":3}`), &p))
	assert.Equal(t, "2025-03-12", p.ExpiryDate.String())
	assert.Equal(t, int64(3), p.VendorID)
}

func TestDate_MarshalKeepsTimeOfDay(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-12T08:15:00Z"`), &d))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-12T08:15:00Z"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Time().Equal(d.Time()))

	data, err = json.Marshal(NewDate(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-12"`, string(data))
}
