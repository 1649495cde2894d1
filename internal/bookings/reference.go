package bookings

import (
	"fmt"
	"math/rand"
	"time"
)

// ReferenceGenerator produces human-readable booking references of the
// form BK<epoch-millis><4-digit-random>. The clock and random source are
// injectable so tests can force collisions.
type ReferenceGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

func NewReferenceGenerator() *ReferenceGenerator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &ReferenceGenerator{
		now:  time.Now,
		intn: rng.Intn,
	}
}

func NewReferenceGeneratorWith(now func() time.Time, intn func(n int) int) *ReferenceGenerator {
	return &ReferenceGenerator{now: now, intn: intn}
}

func (g *ReferenceGenerator) Generate() string {
	return fmt.Sprintf("BK%d%04d", g.now().UnixMilli(), g.intn(10000))
}
