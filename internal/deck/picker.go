package deck

import "math/rand/v2"

// Picker selects cards uniformly at random, never handing out the same card
// twice in a row unless the deck holds a single card.
type Picker struct {
	deck Deck
	rng  *rand.Rand
	last int
}

// NewPicker creates a Picker over d. Returns ErrEmptyDeck if d has no cards.
func NewPicker(d Deck) (*Picker, error) {
	if len(d) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Picker{
		deck: d,
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		last: -1,
	}, nil
}

// Next returns the next card to display.
func (p *Picker) Next() string {
	// Single-card decks repeat; rejection sampling would never terminate.
	if len(p.deck) == 1 {
		return p.deck[0]
	}
	i := p.rng.IntN(len(p.deck))
	for i == p.last {
		i = p.rng.IntN(len(p.deck))
	}
	p.last = i
	return p.deck[i]
}

// Size returns the number of cards in the deck.
func (p *Picker) Size() int { return len(p.deck) }
