package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Property: Run adds RunStep from any starting location, negatives included.
func TestVitals_Run_FromAnyLocation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(-1000, 1000).Draw(rt, "start")
		v := &Vitals{name: "Pixel", location: start}
		v.Run()
		assert.Equal(rt, start+RunStep, v.Location())
	})
}

func TestVitals_TakeDamage_NoFloor(t *testing.T) {
	v := &Vitals{health: 2}
	v.TakeDamage(3)
	assert.Equal(t, -1, v.Health())
	v.TakeDamage(3)
	assert.Equal(t, -4, v.Health())
}

func TestVitals_String(t *testing.T) {
	v := &Vitals{kind: KindDragon, name: "Primus", health: 10}
	assert.Equal(t, `dragon "Primus" (hp 10)`, v.String())
}
