package analytic

import (
	"strconv"

	"github.com/fwojciec/amati"
)

var ordinals = [...]string{"Unison", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh"}

// Reference sizes in semitones of the perfect and major intervals by number.
var (
	perfectSize = map[int]int{1: 0, 4: 5, 5: 7}
	majorSize   = map[int]int{2: 2, 3: 4, 6: 9, 7: 11}
)

type interval struct {
	number    int // 1-7, counted on letters
	semitones int
	quality   string
	abbrev    string
}

func intervalBetween(from, to amati.Tone) interval {
	number := int(to.Letter.Add(-int(from.Letter))) + 1
	semis := amati.Semitones(from, to)
	iv := interval{number: number, semitones: semis}
	if size, ok := perfectSize[number]; ok {
		switch semis - size {
		case 0:
			iv.quality, iv.abbrev = "Perfect", "P"
		case 1:
			iv.quality, iv.abbrev = "Augmented", "A"
		case -1:
			iv.quality, iv.abbrev = "Diminished", "d"
		}
		return iv
	}
	switch semis - majorSize[number] {
	case 0:
		iv.quality, iv.abbrev = "Major", "M"
	case -1:
		iv.quality, iv.abbrev = "Minor", "m"
	case 1:
		iv.quality, iv.abbrev = "Augmented", "A"
	case -2:
		iv.quality, iv.abbrev = "Diminished", "d"
	}
	return iv
}

// String returns the interval name, e.g. "Minor Third".
func (iv interval) String() string {
	if iv.quality == "" {
		return strconv.Itoa(iv.semitones) + " semitones"
	}
	return iv.quality + " " + ordinals[iv.number-1]
}

// Short returns the abbreviated name, e.g. "m3".
func (iv interval) Short() string {
	if iv.abbrev == "" {
		return "?" + strconv.Itoa(iv.number)
	}
	return iv.abbrev + strconv.Itoa(iv.number)
}
