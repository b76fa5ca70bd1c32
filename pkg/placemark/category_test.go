package placemark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/automark/pkg/errors"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw       string
		want      Category
		wantStyle string
	}{
		{"enrollment", CategoryEnrollment, "#m_ylw-pushpin100"},
		{"Skilling", CategorySkilling, "#msn_shaded_dot000"},
		{" PLACEMENT ", CategoryPlacement, "#msn_shaded_dot002"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStyle, got.Style())
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	for _, raw := range []string{"", "alumni", "enrolment"} {
		got, err := ParseCategory(raw)
		require.Error(t, err, raw)
		assert.Equal(t, CategoryUnknown, got)
		assert.True(t, errors.IsLookup(err))
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "enrollment", CategoryEnrollment.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
	assert.Equal(t, "unknown", Category(42).String())
	assert.False(t, CategoryUnknown.IsValid())
	assert.Empty(t, CategoryUnknown.Style())

	text, err := CategorySkilling.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "skilling", string(text))
}

func TestCategoriesRoundTrip(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 3)
	for _, c := range cats {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.Equal(t, c, categoryForStyle(c.Style()))
	}
}
