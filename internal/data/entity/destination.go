package entity

import "strings"

type DestinationScope string

const (
	DestinationNational      DestinationScope = "national"
	DestinationInternational DestinationScope = "international"
)

type Destination struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (d Destination) RecordID() string { return d.ID }

type destinationPayload struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Payload is the create/update body sent to the backend.
func (d Destination) Payload() any {
	return destinationPayload{Name: d.Name, Country: d.Country}
}

// NaturalKey identifies a destination independent of its id: trimmed,
// case-folded name and country.
func (d Destination) NaturalKey() string {
	return normalize(d.Name) + "|" + normalize(d.Country)
}

// Scope classifies the destination against the agency's home country.
func (d Destination) Scope(homeCountry string) DestinationScope {
	if normalize(d.Country) == normalize(homeCountry) {
		return DestinationNational
	}
	return DestinationInternational
}

// ReferencedBy reports whether a package's free-text destination points at d.
func (d Destination) ReferencedBy(p Package) bool {
	target := normalize(p.Destination)
	if target == "" {
		return false
	}
	return target == normalize(d.Name) || target == normalize(d.Name+", "+d.Country)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
