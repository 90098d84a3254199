package kennel

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Breed is a short code identifying a dog breed, e.g. "cocker". Codes map to
// display names through a static table; adding a breed is a single
// RegisterBreed call (or one more line in the table below).
type Breed string

// breedNames indexes display names by breed code.
var breedNames = map[Breed]string{
	"cocker":   "English Cocker Spaniel",
	"maltipoo": "Maltipoo",
}

// RegisterBreed adds (or overrides) a breed code and its display name.
func RegisterBreed(code Breed, name string) { breedNames[code] = name }

// ensureBreed registers a breed code loaded from data under its own code, so
// reports iterating registered breeds do not skip it.
func ensureBreed(code Breed) {
	if _, ok := breedNames[code]; !ok {
		breedNames[code] = string(code)
	}
}

// BreedName returns the display name for a breed code, or the code itself if
// unknown (unknown codes can only come from hand-edited data files).
func BreedName(code Breed) string {
	if name, ok := breedNames[code]; ok {
		return name
	}
	return string(code)
}

// ParseBreed validates a breed code.
func ParseBreed(s string) (Breed, error) {
	if _, ok := breedNames[Breed(s)]; !ok {
		return "", fmt.Errorf("%w: unknown breed %q", ErrInvalidInput, s)
	}
	return Breed(s), nil
}

// AllBreeds iterates over registered breed codes in a stable order.
func AllBreeds() iter.Seq[Breed] {
	return func(yield func(Breed) bool) {
		codes := slices.Collect(maps.Keys(breedNames))
		slices.Sort(codes)
		for _, code := range codes {
			if !yield(code) {
				return
			}
		}
	}
}
