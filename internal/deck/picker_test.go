package deck

import (
	"errors"
	"testing"
)

func TestNewPickerEmptyDeck(t *testing.T) {
	p, err := NewPicker(Deck{})
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("NewPicker(empty) err = %v, want ErrEmptyDeck", err)
	}
	if p != nil {
		t.Fatal("NewPicker returned a picker alongside ErrEmptyDeck")
	}
}

func TestSingleCardDeckRepeats(t *testing.T) {
	p, err := NewPicker(Deck{"only card"})
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	for i := 0; i < 100; i++ {
		if got := p.Next(); got != "only card" {
			t.Fatalf("Next() = %q, want %q", got, "only card")
		}
	}
}

func TestNoImmediateRepeats(t *testing.T) {
	p, err := NewPicker(Deck{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	prev := p.Next()
	for i := 0; i < 1000; i++ {
		card := p.Next()
		if card == prev {
			t.Fatalf("draw %d repeated %q", i, card)
		}
		prev = card
	}
}

func TestTwoCardDeckAlternates(t *testing.T) {
	p, err := NewPicker(Deck{"a", "b"})
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	prev := p.Next()
	for i := 0; i < 50; i++ {
		card := p.Next()
		if card == prev {
			t.Fatalf("two-card deck repeated %q on draw %d", card, i)
		}
		prev = card
	}
}

func TestAllCardsEventuallyShown(t *testing.T) {
	cards := Deck{"a", "b", "c", "d"}
	p, err := NewPicker(cards)
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	seen := make(map[string]bool)
	for i := 0; i < 1000 && len(seen) < len(cards); i++ {
		seen[p.Next()] = true
	}
	for _, c := range cards {
		if !seen[c] {
			t.Fatalf("card %q never shown in 1000 draws", c)
		}
	}
}

func TestPickerSize(t *testing.T) {
	p, err := NewPicker(Deck{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewPicker: %v", err)
	}
	if got := p.Size(); got != 3 {
		t.Fatalf("Size() = %d, want 3", got)
	}
}
