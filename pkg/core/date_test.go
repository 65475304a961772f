package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/libcat/pkg/core"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    core.Date
		wantErr bool
	}{
		{name: "valid", in: "1965-06-01", want: core.MustDate(1965, time.June, 1)},
		{name: "leap day", in: "2024-02-29", want: core.MustDate(2024, time.February, 29)},
		{name: "not a leap year", in: "2023-02-29", wantErr: true},
		{name: "day out of range", in: "2024-06-31", wantErr: true},
		{name: "single digit month", in: "1965-6-01", wantErr: true},
		{name: "slashes", in: "1965/06/01", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "trailing space", in: "1965-06-01 ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.ParseDate(core.ISODate, tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := core.MustDate(1999, time.December, 31)
	b := core.MustDate(2000, time.January, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.Equal(t, "1999-12-31", a.String())
	assert.Equal(t, "31/12/1999", a.Format("02/01/2006"))
}

func TestDate_Text(t *testing.T) {
	var d core.Date
	require.NoError(t, d.UnmarshalText([]byte("2010-10-10")))
	assert.Equal(t, core.MustDate(2010, time.October, 10), d)
	assert.Error(t, d.UnmarshalText([]byte("10-10-2010")))
}

func TestMustDate_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { core.MustDate(2023, time.February, 30) })
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	ts := time.Date(2022, time.July, 4, 23, 30, 0, 0, loc)
	assert.Equal(t, core.MustDate(2022, time.July, 4), core.DateOf(ts))
	assert.True(t, core.Date{}.IsZero())
}
