package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"classic", CategoryClassic},
		{" Drama ", CategoryDrama},
		{"COMEDY", CategoryComedy},
		{"love", CategoryLove},
		{"horror", CategoryHorror},
		{"other", CategoryOther},
		{"sci-fi", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.in))
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Nil(t, SplitTags("   "))
	assert.Equal(t, []string{"space", "ai"}, SplitTags("space, ai"))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a,,b,"))
	assert.Equal(t, "a,b", JoinTags([]string{"a", "b"}))
}

func TestCampaign_Covers(t *testing.T) {
	c := &Campaign{
		ID:        3,
		StartDate: civil.Date{Year: 2024, Month: time.March, Day: 1},
		EndDate:   civil.Date{Year: 2024, Month: time.March, Day: 3},
	}

	tests := []struct {
		name string
		date civil.Date
		want bool
	}{
		{"day before start", civil.Date{Year: 2024, Month: time.February, Day: 29}, false},
		{"start is inclusive", c.StartDate, true},
		{"middle", civil.Date{Year: 2024, Month: time.March, Day: 2}, true},
		{"end is inclusive", c.EndDate, true},
		{"day after end", civil.Date{Year: 2024, Month: time.March, Day: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Covers(tt.date))
		})
	}

	assert.Equal(t, Target{Kind: TargetCampaign, ID: 3}, c.Target())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("date", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, d)

	for _, bad := range []string{"", "2023-02-29", "2024/01/01", "20240101", "2024-13-01", "today"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseDate("date", bad)
			require.Error(t, err)
			assert.True(t, IsInvalidDate(err))

			var dateErr *InvalidDateError
			require.ErrorAs(t, err, &dateErr)
			assert.Equal(t, bad, dateErr.Value)
		})
	}
}

func TestContent_Target(t *testing.T) {
	q := Content{Quote: &Quote{ID: 5}}
	assert.False(t, q.IsCampaign())
	assert.Equal(t, "quote:5", q.Target().String())

	c := Content{Campaign: &Campaign{ID: 9}}
	assert.True(t, c.IsCampaign())
	assert.Equal(t, "campaign:9", c.Target().String())
}
