package selection

import "time"

// UsageLedger records when each ingredient was selected. It belongs to a
// single plan build and is not safe for concurrent use.
type UsageLedger struct {
	uses map[string][]time.Time
}

// NewUsageLedger creates an empty ledger
func NewUsageLedger() *UsageLedger {
	return &UsageLedger{uses: make(map[string][]time.Time)}
}

// Record notes that the ingredient was selected at the given time
func (l *UsageLedger) Record(ingredientID string, at time.Time) {
	l.uses[ingredientID] = append(l.uses[ingredientID], at)
}

// Count returns the number of recorded uses of the ingredient
func (l *UsageLedger) Count(ingredientID string) int {
	return len(l.uses[ingredientID])
}

// Prune forgets every use recorded before cutoff
func (l *UsageLedger) Prune(cutoff time.Time) {
	for id, times := range l.uses {
		kept := times[:0]
		for _, t := range times {
			if !t.Before(cutoff) {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			delete(l.uses, id)
			continue
		}
		l.uses[id] = kept
	}
}
