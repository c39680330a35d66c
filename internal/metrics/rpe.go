package metrics

import (
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

// Band is an effort range on the RPE scale.
type Band int

const (
	BandLight Band = iota
	BandModerate
	BandHard
	BandMax
)

// Bands lists every band from easiest to hardest.
var Bands = []Band{BandLight, BandModerate, BandHard, BandMax}

func (b Band) String() string {
	switch b {
	case BandLight:
		return "light"
	case BandModerate:
		return "moderate"
	case BandHard:
		return "hard"
	default:
		return "max"
	}
}

// BandFor classifies an RPE value.
func BandFor(rpe int) Band {
	switch {
	case rpe <= constants.RPEBandLightMax:
		return BandLight
	case rpe <= constants.RPEBandModerateMax:
		return BandModerate
	case rpe <= constants.RPEBandHardMax:
		return BandHard
	default:
		return BandMax
	}
}

// Distribution counts records per effort band.
type Distribution map[Band]int

// Total returns the number of records counted.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Share returns the fraction of records in band b, 0 for an empty distribution.
func (d Distribution) Share(b Band) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return float64(d[b]) / float64(total)
}

// RPEDistribution counts every record by effort band.
func RPEDistribution(records []models.ExerciseRecord) Distribution {
	d := make(Distribution, len(Bands))
	for _, b := range Bands {
		d[b] = 0
	}
	for _, r := range records {
		d[BandFor(r.RPE)]++
	}
	return d
}
