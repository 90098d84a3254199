package kennel

// This file contains the derived read-only views over the ledger. They are
// pure functions of the current state: plain structured data for a
// presentation layer to format, no rendering here.

// GenderCount counts dogs of each gender.
type GenderCount struct {
	Males   int
	Females int
}

// BreedSummary is the per-breed breakdown of the current inventory.
type BreedSummary struct {
	Breed           Breed
	Males           int
	Females         int
	OwnedByPartner1 int
	OwnedByPartner2 int
}

// Total returns the number of dogs of this breed in inventory.
func (s BreedSummary) Total() int { return s.Males + s.Females }

// SummaryByBreed counts the current inventory filtered by breed.
func (l *Ledger) SummaryByBreed(breed Breed) BreedSummary {
	s := BreedSummary{Breed: breed}
	for _, d := range l.dogs {
		if d.Breed != breed {
			continue
		}
		if d.Gender == Male {
			s.Males++
		} else {
			s.Females++
		}
		if d.Owner == Partner1 {
			s.OwnedByPartner1++
		} else {
			s.OwnedByPartner2++
		}
	}
	return s
}

// AvailableCounts returns, for each breed present in inventory, how many
// males and females are available for sale. Breeds with no dogs are absent
// from the map.
func (l *Ledger) AvailableCounts() map[Breed]GenderCount {
	counts := make(map[Breed]GenderCount)
	for _, d := range l.dogs {
		c := counts[d.Breed]
		if d.Gender == Male {
			c.Males++
		} else {
			c.Females++
		}
		counts[d.Breed] = c
	}
	return counts
}
