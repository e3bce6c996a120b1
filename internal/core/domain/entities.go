package domain

// Governorate is a top-level Tunisian administrative division. It owns its
// delegations exclusively.
type Governorate struct {
	Name        string       `json:"Name"`
	NameAr      string       `json:"NameAr"`
	Code        string       `json:"Value"`
	Delegations []Delegation `json:"Delegations"`
}

// Delegation is a sub-division of a governorate.
type Delegation struct {
	Name       string  `json:"Name"`
	NameAr     string  `json:"NameAr"`
	Code       string  `json:"Value"`
	PostalCode string  `json:"PostalCode"`
	Latitude   float64 `json:"Latitude"`
	Longitude  float64 `json:"Longitude"`
}

// Point returns the delegation centroid.
func (d Delegation) Point() GeoPoint {
	return GeoPoint{Lat: d.Latitude, Lon: d.Longitude}
}

// Clone returns a deep copy of the governorate.
func (g Governorate) Clone() Governorate {
	return g.WithDelegations(g.Delegations)
}

// WithDelegations returns a copy of the governorate holding a fresh copy of ds.
// A nil or empty ds yields an empty, non-nil delegation list.
func (g Governorate) WithDelegations(ds []Delegation) Governorate {
	out := g
	out.Delegations = make([]Delegation, len(ds))
	copy(out.Delegations, ds)
	return out
}

// CloneGovernorates deep-copies a governorate list. The result is never nil.
func CloneGovernorates(govs []Governorate) []Governorate {
	out := make([]Governorate, len(govs))
	for i, g := range govs {
		out[i] = g.Clone()
	}
	return out
}

// DatasetStats summarises the loaded dataset.
type DatasetStats struct {
	Governorates int `json:"governorates"`
	Delegations  int `json:"delegations"`
	PostalCodes  int `json:"postal_codes"`
}

// ComputeStats counts governorates, delegations and distinct non-empty
// postal codes.
func ComputeStats(govs []Governorate) DatasetStats {
	st := DatasetStats{Governorates: len(govs)}
	codes := make(map[string]struct{})
	for _, g := range govs {
		st.Delegations += len(g.Delegations)
		for _, d := range g.Delegations {
			if d.PostalCode != "" {
				codes[d.PostalCode] = struct{}{}
			}
		}
	}
	st.PostalCodes = len(codes)
	return st
}

// Suggestion is a near-miss name returned when a search term is misspelled.
type Suggestion struct {
	Kind          string `json:"kind"` // "governorate" | "delegation"
	Name          string `json:"name"`
	NameAr        string `json:"name_ar"`
	Governorate   string `json:"governorate"`
	GovernorateAr string `json:"governorate_ar"`
	Distance      int    `json:"distance"`
}

const (
	SuggestionGovernorate = "governorate"
	SuggestionDelegation  = "delegation"
)
