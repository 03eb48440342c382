package colour_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/joesingo/blobs/internal/colour"
)

var TestHSVGivesExpectedRGB = []struct {
	H, S, V float64
	Expect  RGB
}{
	{0, 100, 100, RGB{255, 0, 0}},
	{120, 100, 100, RGB{0, 255, 0}},
	{240, 100, 100, RGB{0, 0, 255}},
	{60, 100, 100, RGB{255, 255, 0}},
	{180, 100, 100, RGB{0, 255, 255}},
	{300, 100, 100, RGB{255, 0, 255}},
	{0, 0, 0, RGB{0, 0, 0}},
	{0, 0, 100, RGB{255, 255, 255}},
	{200, 0, 50, RGB{128, 128, 128}},
	{30, 100, 100, RGB{255, 128, 0}},
}

func TestConvertPrimaries(t *testing.T) {
	for k, v := range TestHSVGivesExpectedRGB {
		t.Run("Given HSV"+strconv.Itoa(k), func(t *testing.T) {
			r, g, b := ToRGB(v.H, v.S, v.V)
			assert.Equal(t, v.Expect, RGB{r, g, b}, "should be same triple")
		})
	}
}

func TestConvertAchromatic(t *testing.T) {
	for v := 0.0; v <= 100; v += 12.5 {
		want := int(math.Round(v / 100 * 255))
		for _, h := range []float64{0, 47, 360} {
			r, g, b := ToRGB(h, 0, v)
			assert.Equal(t, want, r)
			assert.Equal(t, want, g)
			assert.Equal(t, want, b)
		}
	}
}

func TestConvertClampsInputs(t *testing.T) {
	r1, g1, b1 := ToRGB(-10, 150, 120)
	r2, g2, b2 := ToRGB(0, 100, 100)
	assert.Equal(t, [3]int{r2, g2, b2}, [3]int{r1, g1, b1})
}

func TestConvertChannelsInRange(t *testing.T) {
	for h := 0.0; h <= 360; h += 7.3 {
		for s := 0.0; s <= 100; s += 26 {
			for v := 0.0; v <= 100; v += 26 {
				r, g, b := ToRGB(h, s, v)
				for _, ch := range []int{r, g, b} {
					assert.GreaterOrEqual(t, ch, 0)
					assert.LessOrEqual(t, ch, 255)
				}
			}
		}
	}
}

func TestColourCacheTracksMutations(t *testing.T) {
	c := New(0, 100, 100)
	assert.Equal(t, RGB{255, 0, 0}, c.RGB())

	c.SetHue(120)
	assert.Equal(t, RGB{0, 255, 0}, c.RGB())

	c.SetSaturation(0)
	assert.Equal(t, RGB{255, 255, 255}, c.RGB())

	c.SetValue(0)
	assert.Equal(t, RGB{0, 0, 0}, c.RGB())

	c.Set(240, 100, 100)
	assert.Equal(t, RGB{0, 0, 255}, c.RGB())
	assert.Equal(t, 240.0, c.Hue())
}
