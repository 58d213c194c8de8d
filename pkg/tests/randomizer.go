package tests

import (
	"math/rand"
	"strings"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Digits returns n random decimal digits.
func (r Randomizer) Digits(n int) string {
	var sb strings.Builder

	for range n {
		sb.WriteByte(byte('0' + r.Intn(10))) //nolint:mnd // skip
	}

	return sb.String()
}

// Date returns a random calendar day between 1900-01-01 and 2099-12-31.
func (r Randomizer) Date() time.Time {
	start := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := 200 * 365 //nolint:mnd // skip

	return start.AddDate(0, 0, r.Intn(days))
}
