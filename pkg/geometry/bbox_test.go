package geometry

import (
	"testing"

	"github.com/1F47E/geo-mobb/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox(t *testing.T) {
	testCases := []struct {
		name     string
		points   []models.Point
		expected models.Box
	}{
		{
			name:     "square",
			points:   square(),
			expected: models.Box{models.Pt(0, 0), models.Pt(0, 2), models.Pt(2, 2), models.Pt(2, 0)},
		},
		{
			name:     "scattered",
			points:   []models.Point{models.Pt(3, -1), models.Pt(-2, 4), models.Pt(0.5, 0.5)},
			expected: models.Box{models.Pt(-2, -1), models.Pt(-2, 4), models.Pt(3, 4), models.Pt(3, -1)},
		},
		{
			name:     "single point",
			points:   []models.Point{models.Pt(1, 2)},
			expected: models.Box{models.Pt(1, 2), models.Pt(1, 2), models.Pt(1, 2), models.Pt(1, 2)},
		},
		{
			name:     "coincident points",
			points:   []models.Point{models.Pt(-1, 1), models.Pt(-1, 1), models.Pt(-1, 1)},
			expected: models.Box{models.Pt(-1, 1), models.Pt(-1, 1), models.Pt(-1, 1), models.Pt(-1, 1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			box, err := BoundingBox(tc.points)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, box)
		})
	}
}

func TestBoundingBoxDegenerateArea(t *testing.T) {
	box, err := BoundingBox([]models.Point{models.Pt(4, 4)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, BoxArea(box))
}

func TestBoundingBoxEmpty(t *testing.T) {
	_, err := BoundingBox(nil)
	require.Error(t, err)

	var insufficient *ErrInsufficientPoints
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Got)
	assert.Equal(t, 1, insufficient.Want)
}
