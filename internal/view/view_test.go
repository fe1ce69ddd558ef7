package view

import (
	"bytes"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncs_ClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("CST", -6*60*60)
	clock := Funcs(loc)["clock"].(func(time.Time) string)

	assert.Equal(t, "09:30", clock(time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "", clock(time.Time{}))
}

func TestFuncs_OnlyPageHelpers(t *testing.T) {
	funcs := Funcs(nil)

	assert.Len(t, funcs, 3)
	for _, name := range []string{"clock", "kindClass", "dec"} {
		assert.Contains(t, funcs, name)
	}
}

func TestKindClass(t *testing.T) {
	assert.Equal(t, "reward", kindClass("REWARD"))
	assert.Equal(t, "restaurant", kindClass("RESTAURANT"))
	assert.Equal(t, "stamp", kindClass("STAMP"))
}

func TestRenderer_ParsesEmbeddedPages(t *testing.T) {
	r, err := NewRenderer(time.UTC)
	require.NoError(t, err)

	assert.NotNil(t, r.templates.Lookup(DriverPage))
	assert.NotNil(t, r.templates.Lookup(LoyaltyCardPage))
	assert.NotNil(t, r.templates.Lookup("card"))

	var buf bytes.Buffer
	require.NoError(t, r.templates.ExecuteTemplate(&buf, LoyaltyCardPage, map[string]interface{}{
		"Stamps": 0, "TotalSlots": 6, "Radius": 45.0, "Circumference": 282.74, "DashOffset": 282.74,
		"Remaining": 6, "Percent": 0,
	}))
	assert.Contains(t, buf.String(), "6 more stamps")
}

func TestStatic(t *testing.T) {
	b, err := fs.ReadFile(Static(), "driver.js")
	require.NoError(t, err)
	assert.Contains(t, string(b), "/api/v1/console")
}
