package person

import (
	"math/rand/v2"
	"strconv"
)

// Rand is the integer-draw source a Generator consumes. *rand.Rand satisfies
// it; tests can substitute a deterministic source.
type Rand interface {
	IntN(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// Generator produces random person records from an injected source
type Generator struct {
	src Rand
}

// New creates a generator drawing from src
func New(src Rand) *Generator {
	return &Generator{src: src}
}

// Generate produces one record. Every field is drawn independently; nothing
// is shared between successive records.
func (g *Generator) Generate() Record {
	return Record{
		Date:       Epoch.AddDate(0, 0, g.src.IntN(DateSpanDays+1)),
		FirstName:  g.tagged(NamePrefix, NameMax),
		LastName:   g.tagged(SurnamePrefix, NameMax),
		Patronymic: g.tagged(PatronymicPrefix, NameMax),
		City:       g.tagged(CityPrefix, CityMax),
		Country:    g.tagged(CountryPrefix, CountryMax),
	}
}

// tagged returns prefix followed by a uniform integer in [1, max]
func (g *Generator) tagged(prefix string, max int) string {
	return prefix + strconv.Itoa(1+g.src.IntN(max))
}
