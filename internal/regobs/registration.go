package regobs

import (
	"encoding/json"
	"fmt"
	"time"

	"snowreg/internal/region"
)

// Observer identifies the account behind a received registration.
type Observer struct {
	ID         *int
	Nickname   string
	Competence *Competence
}

type observerWire struct {
	ID         *int        `json:"ObserverID,omitempty"`
	Nickname   *string     `json:"NickName,omitempty"`
	Competence *Competence `json:"CompetenceLevelTID,omitempty"`
}

// SnowRegistration is a field observation corresponding to the snow
// registration form of the observation service. Build one with
// NewSnowRegistration and attach observations with the Add and Set
// methods; Set methods replace what an earlier call stored while Add
// methods accumulate.
type SnowRegistration struct {
	ObsTime          time.Time
	Position         Position
	SpatialPrecision *SpatialPrecision
	Source           *Source

	// ID, Observer and Region are assigned by the service and only
	// present on received registrations.
	ID       *int
	Observer *Observer
	Region   *region.SnowRegion

	DangerSigns         []DangerSign
	AvalancheObs        *AvalancheObs
	AvalancheActivities []AvalancheActivity
	Weather             *Weather
	SnowCover           *SnowCover
	CompressionTests    []CompressionTest
	SnowProfile         *SnowProfile
	AvalancheProblems   []AvalancheProblem
	DangerAssessment    *DangerAssessment
	Incident            *Incident
	Note                *Note

	// Attachments holds received images, grouped by the form they
	// were filed under.
	Attachments map[ObservationType][]UploadedImage

	images map[ObservationType][]*Image
	anyObs bool
}

// NewSnowRegistration starts an empty registration at a position and
// time. Localize obsTime to the Oslo zone before passing it.
func NewSnowRegistration(obsTime time.Time, position Position) *SnowRegistration {
	return &SnowRegistration{
		ObsTime:  obsTime,
		Position: position,
		images:   map[ObservationType][]*Image{},
	}
}

// Any reports whether at least one observation has been attached.
func (r *SnowRegistration) Any() bool {
	return r.anyObs
}

// AddDangerSign appends a danger sign observation.
func (r *SnowRegistration) AddDangerSign(d DangerSign) error {
	if err := d.validate(); err != nil {
		return err
	}
	r.DangerSigns = append(r.DangerSigns, d)
	r.anyObs = true
	return nil
}

// SetAvalancheObs stores a single-avalanche observation, replacing any
// earlier one.
func (r *SnowRegistration) SetAvalancheObs(a AvalancheObs) error {
	if err := a.validate(); err != nil {
		return err
	}
	r.AvalancheObs = &a
	r.anyObs = true
	return nil
}

// AddAvalancheActivity appends an avalanche activity observation.
func (r *SnowRegistration) AddAvalancheActivity(a AvalancheActivity) error {
	if err := a.validate(); err != nil {
		return err
	}
	r.AvalancheActivities = append(r.AvalancheActivities, a)
	r.anyObs = true
	return nil
}

// SetWeather stores a weather observation, replacing any earlier one.
func (r *SnowRegistration) SetWeather(w Weather) error {
	if err := w.validate(); err != nil {
		return err
	}
	r.Weather = &w
	r.anyObs = true
	return nil
}

// SetSnowCover stores a snow cover observation, replacing any earlier
// one.
func (r *SnowRegistration) SetSnowCover(s SnowCover) error {
	if err := s.validate(); err != nil {
		return err
	}
	r.SnowCover = &s
	r.anyObs = true
	return nil
}

// AddCompressionTest appends a stability test.
func (r *SnowRegistration) AddCompressionTest(c CompressionTest) error {
	if err := c.validate(); err != nil {
		return err
	}
	r.CompressionTests = append(r.CompressionTests, c)
	r.anyObs = true
	return nil
}

// SetSnowProfile stores a snow profile, replacing any earlier one.
func (r *SnowRegistration) SetSnowProfile(p SnowProfile) error {
	if err := p.validate(); err != nil {
		return err
	}
	r.SnowProfile = &p
	r.anyObs = true
	return nil
}

// AddAvalancheProblem appends an avalanche problem. The form holds at
// most three.
func (r *SnowRegistration) AddAvalancheProblem(p AvalancheProblem) error {
	if len(r.AvalancheProblems) >= 3 {
		return ErrTooManyProblems
	}
	if err := p.validate(); err != nil {
		return err
	}
	r.AvalancheProblems = append(r.AvalancheProblems, p)
	r.anyObs = true
	return nil
}

// SetDangerAssessment stores a danger assessment, replacing any
// earlier one.
func (r *SnowRegistration) SetDangerAssessment(d DangerAssessment) error {
	if err := d.validate(); err != nil {
		return err
	}
	r.DangerAssessment = &d
	r.anyObs = true
	return nil
}

// SetIncident stores an incident, replacing any earlier one.
func (r *SnowRegistration) SetIncident(i Incident) error {
	if err := i.validate(); err != nil {
		return err
	}
	r.Incident = &i
	r.anyObs = true
	return nil
}

// SetNote stores a general note, replacing any earlier one.
func (r *SnowRegistration) SetNote(n Note) error {
	if err := n.validate(); err != nil {
		return err
	}
	r.Note = &n
	r.anyObs = true
	return nil
}

// AddImage attaches an image under the form identified by obsType.
func (r *SnowRegistration) AddImage(img *Image, obsType ObservationType) {
	if r.images == nil {
		r.images = map[ObservationType][]*Image{}
	}
	r.images[obsType] = append(r.images[obsType], img)
}

// Images returns the locally attached images in form order.
func (r *SnowRegistration) Images() []*Image {
	var out []*Image
	for _, t := range ObservationTypes {
		out = append(out, r.images[t]...)
	}
	return out
}

type attachmentWire struct {
	imageWire
	GeoHazard       int             `json:"GeoHazardTID"`
	RegistrationTID ObservationType `json:"RegistrationTID"`
}

type obsLocationWire struct {
	Latitude    float64            `json:"Latitude"`
	Longitude   float64            `json:"Longitude"`
	Uncertainty *SpatialPrecision  `json:"Uncertainty,omitempty"`
	Region      *region.SnowRegion `json:"ForecastRegionTID,omitempty"`
}

type registrationWire struct {
	Attachments         []json.RawMessage   `json:"Attachments,omitempty"`
	AvalancheActivities []AvalancheActivity `json:"AvalancheActivityObs2,omitempty"`
	AvalancheProblems   []AvalancheProblem  `json:"AvalancheEvalProblem2,omitempty"`
	DangerAssessment    *DangerAssessment   `json:"AvalancheEvaluation3,omitempty"`
	AvalancheObs        *AvalancheObs       `json:"AvalancheObs,omitempty"`
	CompressionTests    []CompressionTest   `json:"CompressionTest,omitempty"`
	DangerSigns         []DangerSign        `json:"DangerObs,omitempty"`
	ObsTime             string              `json:"DtObsTime"`
	Note                *Note               `json:"GeneralObservation,omitempty"`
	GeoHazard           int                 `json:"GeoHazardTID"`
	Incident            *Incident           `json:"Incident,omitempty"`
	Location            obsLocationWire     `json:"ObsLocation"`
	Source              *Source             `json:"SourceTID,omitempty"`
	SnowProfile         *SnowProfile        `json:"SnowProfile2,omitempty"`
	SnowCover           *SnowCover          `json:"SnowSurfaceObservation,omitempty"`
	Weather             *Weather            `json:"WeatherObservation,omitempty"`
	RegID               *int                `json:"RegId,omitempty"`
	Observer            *observerWire       `json:"Observer,omitempty"`
}

func (r *SnowRegistration) MarshalJSON() ([]byte, error) {
	w := registrationWire{
		AvalancheActivities: r.AvalancheActivities,
		AvalancheProblems:   r.AvalancheProblems,
		DangerAssessment:    r.DangerAssessment,
		AvalancheObs:        r.AvalancheObs,
		CompressionTests:    r.CompressionTests,
		DangerSigns:         r.DangerSigns,
		ObsTime:             formatTime(r.ObsTime),
		Note:                r.Note,
		GeoHazard:           GeoHazardSnow,
		Incident:            r.Incident,
		Location: obsLocationWire{
			Latitude:    r.Position.Latitude,
			Longitude:   r.Position.Longitude,
			Uncertainty: r.SpatialPrecision,
		},
		Source:      r.Source,
		SnowProfile: r.SnowProfile,
		SnowCover:   r.SnowCover,
		Weather:     r.Weather,
	}
	for _, t := range ObservationTypes {
		for _, img := range r.images[t] {
			att, err := json.Marshal(attachmentWire{
				imageWire:       img.wire(),
				GeoHazard:       GeoHazardSnow,
				RegistrationTID: t,
			})
			if err != nil {
				return nil, err
			}
			w.Attachments = append(w.Attachments, att)
		}
	}
	return json.Marshal(w)
}

func (r *SnowRegistration) UnmarshalJSON(data []byte) error {
	var w registrationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = SnowRegistration{
		Position:            Position{Latitude: w.Location.Latitude, Longitude: w.Location.Longitude},
		SpatialPrecision:    w.Location.Uncertainty,
		Source:              w.Source,
		ID:                  w.RegID,
		Region:              w.Location.Region,
		DangerSigns:         w.DangerSigns,
		AvalancheObs:        w.AvalancheObs,
		AvalancheActivities: w.AvalancheActivities,
		Weather:             w.Weather,
		SnowCover:           w.SnowCover,
		CompressionTests:    w.CompressionTests,
		SnowProfile:         w.SnowProfile,
		AvalancheProblems:   w.AvalancheProblems,
		DangerAssessment:    w.DangerAssessment,
		Incident:            w.Incident,
		Note:                w.Note,
		images:              map[ObservationType][]*Image{},
	}
	if w.ObsTime != "" {
		t, err := parseObsTime(w.ObsTime)
		if err != nil {
			return err
		}
		r.ObsTime = t
	}
	if w.Observer != nil {
		obs := &Observer{ID: w.Observer.ID, Competence: w.Observer.Competence}
		if w.Observer.Nickname != nil {
			obs.Nickname = *w.Observer.Nickname
		}
		r.Observer = obs
	}
	for _, raw := range w.Attachments {
		var tag struct {
			RegistrationTID ObservationType `json:"RegistrationTID"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return err
		}
		var img UploadedImage
		if err := json.Unmarshal(raw, &img); err != nil {
			return fmt.Errorf("decode attachment: %w", err)
		}
		if r.Attachments == nil {
			r.Attachments = map[ObservationType][]UploadedImage{}
		}
		r.Attachments[tag.RegistrationTID] = append(r.Attachments[tag.RegistrationTID], img)
	}
	r.anyObs = r.AvalancheObs != nil || r.Weather != nil || r.SnowCover != nil ||
		r.SnowProfile != nil || r.DangerAssessment != nil || r.Incident != nil ||
		r.Note != nil || len(r.DangerSigns) > 0 || len(r.AvalancheActivities) > 0 ||
		len(r.CompressionTests) > 0 || len(r.AvalancheProblems) > 0
	return nil
}
