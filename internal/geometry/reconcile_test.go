package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name    string
		current Dimensions
		field   Field
		value   float64
		want    Dimensions
	}{
		{
			name:    "length on empty keeps area zero",
			current: Dimensions{},
			field:   FieldLength,
			value:   5,
			want:    Dimensions{Length: 5},
		},
		{
			name:    "breadth recomputes area",
			current: Dimensions{Length: 5},
			field:   FieldBreadth,
			value:   4,
			want:    Dimensions{Length: 5, Breadth: 4, Area: 20},
		},
		{
			name:    "length product is rounded",
			current: Dimensions{Breadth: 3.333},
			field:   FieldLength,
			value:   3.333,
			want:    Dimensions{Length: 3.333, Breadth: 3.333, Area: 11.11},
		},
		{
			name:    "area preserves length",
			current: Dimensions{Length: 5, Breadth: 4, Area: 20},
			field:   FieldArea,
			value:   40,
			want:    Dimensions{Length: 5, Breadth: 8, Area: 40},
		},
		{
			name:    "area derives length from breadth",
			current: Dimensions{Breadth: 3},
			field:   FieldArea,
			value:   10,
			want:    Dimensions{Length: 3.33, Breadth: 3, Area: 10},
		},
		{
			name:    "area alone assumes a square",
			current: Dimensions{},
			field:   FieldArea,
			value:   49,
			want:    Dimensions{Length: 7, Breadth: 7, Area: 49},
		},
		{
			name:    "re-entered area reconciles inconsistent sides",
			current: Dimensions{Length: 50, Breadth: 90, Area: 4000},
			field:   FieldArea,
			value:   4000,
			want:    Dimensions{Length: 50, Breadth: 80, Area: 4000},
		},
		{
			name:    "re-entered area keeps derived sides",
			current: Dimensions{Length: 1.43, Breadth: 7, Area: 10},
			field:   FieldArea,
			value:   10,
			want:    Dimensions{Length: 1.43, Breadth: 7, Area: 10},
		},
		{
			name:    "re-entered area keeps rounded square",
			current: Dimensions{Length: 1.41, Breadth: 1.41, Area: 2},
			field:   FieldArea,
			value:   2,
			want:    Dimensions{Length: 1.41, Breadth: 1.41, Area: 2},
		},
		{
			name:    "zero area leaves sides alone",
			current: Dimensions{Length: 5},
			field:   FieldArea,
			value:   0,
			want:    Dimensions{Length: 5},
		},
		{
			name:    "negative value is clamped",
			current: Dimensions{Length: 5, Breadth: 4, Area: 20},
			field:   FieldLength,
			value:   -3,
			want:    Dimensions{Length: 0, Breadth: 4, Area: 0},
		},
		{
			name:    "unknown field returns current",
			current: Dimensions{Length: 2, Breadth: 2, Area: 4},
			field:   Field("height"),
			value:   9,
			want:    Dimensions{Length: 2, Breadth: 2, Area: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.current, tt.field, tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	starts := []Dimensions{
		{},
		{Length: 5},
		{Breadth: 7},
		{Length: 5, Breadth: 4, Area: 20},
		{Length: 12.5, Breadth: 3.2, Area: 40},
	}
	values := []float64{0, 1, 2, 10, 49, 50, 123.45, 1000}

	for _, start := range starts {
		for _, field := range []Field{FieldLength, FieldBreadth, FieldArea} {
			for _, v := range values {
				once := Reconcile(start, field, v)
				twice := Reconcile(once, field, v)
				assert.Equal(t, once, twice, "start=%+v field=%s value=%v", start, field, v)
			}
		}
	}
}

func TestReconcile_LengthEditsStayConsistent(t *testing.T) {
	d := Reconcile(Dimensions{}, FieldLength, 12.25)
	d = Reconcile(d, FieldBreadth, 8.5)
	assert.True(t, d.Consistent())
	assert.Equal(t, 104.13, d.Area)
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"length":  FieldLength,
		"l":       FieldLength,
		"Breadth": FieldBreadth,
		"b":       FieldBreadth,
		" area ":  FieldArea,
		"a":       FieldArea,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseField("height")
	assert.Error(t, err)
}
