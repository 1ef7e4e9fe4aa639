package quotes

import "time"

const quoteIDLayout = "20060102150405"

// IDGenerator produces quote identifiers.
type IDGenerator interface {
	NewID() string
}

// ClockIDGenerator derives ids from the local wall clock at second
// granularity, so two quotes in the same second share an id.
type ClockIDGenerator struct {
	Now func() time.Time
}

func NewClockIDGenerator() *ClockIDGenerator {
	return &ClockIDGenerator{Now: time.Now}
}

func (g *ClockIDGenerator) NewID() string {
	now := time.Now
	if g != nil && g.Now != nil {
		now = g.Now
	}
	return "QT-" + now().Local().Format(quoteIDLayout)
}
