// Package discovery implements the location discovery pipeline: free-text
// search, the distance gate and the category gate over the venue catalog,
// plus extraction of the category vocabulary from venue names.
package discovery

import (
	"strconv"
	"strings"

	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/Arkhalisal/kevin-work/internal/geo"
)

// minEventCount is the relevance threshold: venues at or below it are
// never shown.
const minEventCount = 3

// Pipeline filters venue catalogs against a fixed home coordinate.
type Pipeline struct {
	home geo.Point
}

func NewPipeline(home geo.Point) *Pipeline {
	return &Pipeline{home: home}
}

// Home returns the reference coordinate distances are measured from.
func (p *Pipeline) Home() geo.Point {
	return p.home
}

// Filter applies the three gates as sequential narrowing stages and
// returns the matching venues in catalog order. The result is rebuilt
// from scratch on every call; nothing is cached between calls.
func (p *Pipeline) Filter(venues []domain.Venue, state domain.FilterState) []domain.Venue {
	matched := searchStage(venues, state.SearchTerm)
	matched = p.distanceStage(matched, state.MaxDistanceKm)
	return categoryStage(matched, state.Category)
}

// searchStage keeps venues that clear the relevance threshold, have both
// coordinates, and match the search term against either the name
// (case-insensitive) or the decimal form of the event count. An empty
// term matches every venue.
func searchStage(venues []domain.Venue, term string) []domain.Venue {
	lowered := strings.ToLower(term)

	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if v.Count <= minEventCount || !v.HasCoordinates() {
			continue
		}
		if strings.Contains(strings.ToLower(v.Name), lowered) ||
			strings.Contains(strconv.Itoa(v.Count), term) {
			out = append(out, v)
		}
	}
	return out
}

// distanceStage keeps venues strictly farther from home than maxKm. The
// polarity is deliberate: the browser surfaces venues beyond the slider
// value, so a venue at the home coordinate never passes.
func (p *Pipeline) distanceStage(venues []domain.Venue, maxKm float64) []domain.Venue {
	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		d := geo.Distance(p.home, geo.Point{Lat: *v.Latitude, Lng: *v.Longitude})
		if d > maxKm {
			out = append(out, v)
		}
	}
	return out
}

// categoryStage keeps venues whose name contains the category,
// case-insensitively. The empty category matches everything.
func categoryStage(venues []domain.Venue, category string) []domain.Venue {
	lowered := strings.ToLower(category)

	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if strings.Contains(strings.ToLower(v.Name), lowered) {
			out = append(out, v)
		}
	}
	return out
}
