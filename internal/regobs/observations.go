package regobs

import (
	"encoding/json"
	"fmt"
	"time"
)

// The records in this file mirror the schemas of the observation
// service's snow registration form. Each record marshals to the
// exact wire shape the service expects; fields left unset are
// omitted rather than sent as null.

// DangerSign is an observed sign of avalanche danger, such as whumpf
// sounds or recent cracks.
type DangerSign struct {
	// Sign left nil with a non-empty Comment reports an unclassified
	// sign; the service stores it under code 0.
	Sign    *DangerSignType
	Comment string
}

func (d DangerSign) validate() error {
	if d.Sign == nil && d.Comment == "" {
		return fmt.Errorf("%w: danger sign", ErrNoObservation)
	}
	return nil
}

type dangerSignWire struct {
	Sign    DangerSignType `json:"DangerSignTID"`
	Comment *string        `json:"Comment,omitempty"`
}

func (d DangerSign) MarshalJSON() ([]byte, error) {
	w := dangerSignWire{}
	if d.Sign != nil {
		w.Sign = *d.Sign
	}
	if d.Comment != "" {
		w.Comment = &d.Comment
	}
	return json.Marshal(w)
}

func (d *DangerSign) UnmarshalJSON(data []byte) error {
	var w dangerSignWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = DangerSign{}
	if w.Sign != 0 {
		sign := w.Sign
		d.Sign = &sign
	}
	if w.Comment != nil {
		d.Comment = *w.Comment
	}
	return nil
}

// AvalancheObs is a detailed observation of a single avalanche.
type AvalancheObs struct {
	ReleaseTime time.Time
	// Start is the highest position of the fracture line, Stop the
	// lowest position of the debris.
	Start            *Position
	Stop             *Position
	Exposition       *Direction
	Size             *DestructiveSize
	Type             *AvalancheType
	Trigger          *AvalancheTrigger
	Terrain          *AvalancheTerrain
	WeakLayer        *WeakLayer
	FractureHeightCm *int
	FractureWidth    *int
	PathName         string
	Comment          string
}

func (a AvalancheObs) validate() error {
	if a.ReleaseTime.IsZero() {
		return fmt.Errorf("%w: avalanche observation needs a release time", ErrNoObservation)
	}
	return nil
}

type avalancheObsWire struct {
	WeakLayer      *WeakLayer        `json:"AvalCauseTID,omitempty"`
	Type           *AvalancheType    `json:"AvalancheTID,omitempty"`
	Trigger        *AvalancheTrigger `json:"AvalancheTriggerTID,omitempty"`
	Comment        *string           `json:"Comment,omitempty"`
	Size           *DestructiveSize  `json:"DestructiveSizeTID,omitempty"`
	ReleaseTime    string            `json:"DtAvalancheTime"`
	FractureHeight *int              `json:"FractureHeight,omitempty"`
	FractureWidth  *int              `json:"FractureWidth,omitempty"`
	StartLat       *float64          `json:"StartLat,omitempty"`
	StartLong      *float64          `json:"StartLong,omitempty"`
	StopLat        *float64          `json:"StopLat,omitempty"`
	StopLong       *float64          `json:"StopLong,omitempty"`
	Terrain        *AvalancheTerrain `json:"TerrainStartZoneTID,omitempty"`
	PathName       *string           `json:"Trajectory,omitempty"`
	Exposition     *Expositions      `json:"ValidExposition,omitempty"`
}

func (a AvalancheObs) MarshalJSON() ([]byte, error) {
	w := avalancheObsWire{
		WeakLayer:      a.WeakLayer,
		Type:           a.Type,
		Trigger:        a.Trigger,
		Size:           a.Size,
		ReleaseTime:    formatTime(a.ReleaseTime),
		FractureHeight: a.FractureHeightCm,
		FractureWidth:  a.FractureWidth,
		Terrain:        a.Terrain,
	}
	if a.Comment != "" {
		w.Comment = &a.Comment
	}
	if a.PathName != "" {
		w.PathName = &a.PathName
	}
	if a.Start != nil {
		w.StartLat = &a.Start.Latitude
		w.StartLong = &a.Start.Longitude
	}
	if a.Stop != nil {
		w.StopLat = &a.Stop.Latitude
		w.StopLong = &a.Stop.Longitude
	}
	if a.Exposition != nil {
		exp := NewExpositions(*a.Exposition)
		w.Exposition = &exp
	}
	return json.Marshal(w)
}

func (a *AvalancheObs) UnmarshalJSON(data []byte) error {
	var w avalancheObsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = AvalancheObs{
		Size:             w.Size,
		Type:             w.Type,
		Trigger:          w.Trigger,
		Terrain:          w.Terrain,
		WeakLayer:        w.WeakLayer,
		FractureHeightCm: w.FractureHeight,
		FractureWidth:    w.FractureWidth,
	}
	if w.ReleaseTime != "" {
		t, err := parseObsTime(w.ReleaseTime)
		if err != nil {
			return err
		}
		a.ReleaseTime = t
	}
	if w.StartLat != nil && w.StartLong != nil {
		a.Start = &Position{Latitude: *w.StartLat, Longitude: *w.StartLong}
	}
	if w.StopLat != nil && w.StopLong != nil {
		a.Stop = &Position{Latitude: *w.StopLat, Longitude: *w.StopLong}
	}
	if w.Exposition != nil {
		if dirs := w.Exposition.Directions(); len(dirs) > 0 {
			dir := dirs[0]
			a.Exposition = &dir
		}
	}
	if w.Comment != nil {
		a.Comment = *w.Comment
	}
	if w.PathName != nil {
		a.PathName = *w.PathName
	}
	return nil
}

// ActivityWindow converts a day and an optional timeframe to the
// concrete interval the service stores. A nil timeframe covers the
// whole day. The last bucket ends at 23:59, as does the whole-day
// interval.
func ActivityWindow(date Date, timeframe *ActivityTimeframe) (start, end time.Time) {
	day := date.Time()
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}
	if timeframe == nil {
		return at(0, 0), at(23, 59)
	}
	switch *timeframe {
	case TimeframeZeroToSix:
		return at(0, 0), at(6, 0)
	case TimeframeSixToTwelve:
		return at(6, 0), at(12, 0)
	case TimeframeTwelveToEighteen:
		return at(12, 0), at(18, 0)
	case TimeframeEighteenToTwentyFour:
		return at(18, 0), at(23, 59)
	}
	return at(0, 0), at(23, 59)
}

// AvalancheActivity is an observation of a group of avalanches.
type AvalancheActivity struct {
	Start        time.Time
	End          time.Time
	Quantity     *ActivityQuantity
	Type         *ActivityAvalancheType
	Sensitivity  *Sensitivity
	Size         *DestructiveSize
	Distribution *Distribution
	Elevation    *Elevation
	Expositions  *Expositions
	Comment      string
}

// NewAvalancheActivity builds an activity observation covering the
// given timeframe of a day. Describe the avalanches by setting the
// remaining fields afterwards.
func NewAvalancheActivity(date Date, timeframe *ActivityTimeframe) *AvalancheActivity {
	start, end := ActivityWindow(date, timeframe)
	return &AvalancheActivity{Start: start, End: end}
}

func (a AvalancheActivity) validate() error {
	if a.Quantity != nil && *a.Quantity == QuantityNoActivity {
		if a.Type != nil || a.Sensitivity != nil || a.Size != nil ||
			a.Distribution != nil || a.Elevation != nil || a.Expositions != nil {
			return fmt.Errorf("%w: avalanche attributes given but no activity reported", ErrNoObservation)
		}
	}
	return nil
}

type avalancheActivityWire struct {
	elevationWire
	Distribution *Distribution          `json:"AvalPropagationTID,omitempty"`
	Sensitivity  *Sensitivity           `json:"AvalTriggerSimpleTID,omitempty"`
	Type         *ActivityAvalancheType `json:"AvalancheExtTID,omitempty"`
	Comment      *string                `json:"Comment,omitempty"`
	Size         *DestructiveSize       `json:"DestructiveSizeTID,omitempty"`
	End          string                 `json:"DtEnd"`
	Start        string                 `json:"DtStart"`
	Quantity     *ActivityQuantity      `json:"EstimatedNumTID,omitempty"`
	Expositions  *Expositions           `json:"ValidExposition,omitempty"`
}

func (a AvalancheActivity) MarshalJSON() ([]byte, error) {
	w := avalancheActivityWire{
		Distribution: a.Distribution,
		Sensitivity:  a.Sensitivity,
		Type:         a.Type,
		Size:         a.Size,
		End:          formatTime(a.End),
		Start:        formatTime(a.Start),
		Quantity:     a.Quantity,
		Expositions:  a.Expositions,
	}
	if a.Comment != "" {
		w.Comment = &a.Comment
	}
	if a.Elevation != nil {
		w.elevationWire = a.Elevation.wire()
	}
	return json.Marshal(w)
}

func (a *AvalancheActivity) UnmarshalJSON(data []byte) error {
	var w avalancheActivityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = AvalancheActivity{
		Quantity:     w.Quantity,
		Type:         w.Type,
		Sensitivity:  w.Sensitivity,
		Size:         w.Size,
		Distribution: w.Distribution,
		Expositions:  w.Expositions,
	}
	if w.Start != "" {
		t, err := parseObsTime(w.Start)
		if err != nil {
			return err
		}
		a.Start = t
	}
	if w.End != "" {
		t, err := parseObsTime(w.End)
		if err != nil {
			return err
		}
		a.End = t
	}
	if w.Format != nil && w.ElevMax != nil {
		a.Elevation = elevationFromWire(w.elevationWire)
	}
	if w.Comment != nil {
		a.Comment = *w.Comment
	}
	return nil
}

// Weather is the weather at the time of observation.
type Weather struct {
	Precipitation     *PrecipitationType
	WindDir           *Direction
	AirTemp           *float64
	WindSpeed         *float64
	CloudCoverPercent *int
	Comment           string
}

func (w Weather) validate() error {
	if w.Precipitation == nil && w.WindDir == nil && w.AirTemp == nil &&
		w.WindSpeed == nil && w.CloudCoverPercent == nil && w.Comment == "" {
		return fmt.Errorf("%w: weather", ErrNoObservation)
	}
	if w.CloudCoverPercent != nil && (*w.CloudCoverPercent < 0 || *w.CloudCoverPercent > 100) {
		return fmt.Errorf("%w: cloud cover %d%%", ErrInvalidRange, *w.CloudCoverPercent)
	}
	return nil
}

type weatherWire struct {
	AirTemp       *float64           `json:"AirTemperature,omitempty"`
	CloudCover    *int               `json:"CloudCover,omitempty"`
	Comment       *string            `json:"Comment,omitempty"`
	Precipitation *PrecipitationType `json:"PrecipitationTID,omitempty"`
	WindDirection *float64           `json:"WindDirection,omitempty"`
	WindSpeed     *float64           `json:"WindSpeed,omitempty"`
}

func (we Weather) MarshalJSON() ([]byte, error) {
	w := weatherWire{
		AirTemp:       we.AirTemp,
		CloudCover:    we.CloudCoverPercent,
		Precipitation: we.Precipitation,
		WindSpeed:     we.WindSpeed,
	}
	if we.Comment != "" {
		w.Comment = &we.Comment
	}
	if we.WindDir != nil {
		deg := float64(we.WindDir.Degrees())
		w.WindDirection = &deg
	}
	return json.Marshal(w)
}

func (we *Weather) UnmarshalJSON(data []byte) error {
	var w weatherWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*we = Weather{
		Precipitation:     w.Precipitation,
		AirTemp:           w.AirTemp,
		WindSpeed:         w.WindSpeed,
		CloudCoverPercent: w.CloudCover,
	}
	if w.WindDirection != nil {
		dir := DirectionFromDegrees(*w.WindDirection)
		we.WindDir = &dir
	}
	if w.Comment != nil {
		we.Comment = *w.Comment
	}
	return nil
}

// SnowCover describes the top of the snowpack. Depths are kept in
// centimetres; the service stores them in metres.
type SnowCover struct {
	Drift    *SnowDrift
	Surface  *SnowSurface
	Moisture *SurfaceMoisture
	// Hn24Cm is the snow accumulated over the last 24 hours.
	Hn24Cm      *float64
	NewSnowLine *int
	// HsCm is the total snow depth.
	HsCm            *float64
	SnowLine        *int
	LayeredSnowLine *float64
	Comment         string
}

func (s SnowCover) validate() error {
	if s.Drift == nil && s.Surface == nil && s.Moisture == nil && s.Hn24Cm == nil &&
		s.NewSnowLine == nil && s.HsCm == nil && s.SnowLine == nil &&
		s.LayeredSnowLine == nil && s.Comment == "" {
		return fmt.Errorf("%w: snow cover", ErrNoObservation)
	}
	return nil
}

type snowCoverWire struct {
	Comment         *string          `json:"Comment,omitempty"`
	LayeredSnowLine *float64         `json:"HeightLimitLayeredSnow,omitempty"`
	NewSnowDepth24  *float64         `json:"NewSnowDepth24,omitempty"`
	NewSnowLine     *int             `json:"NewSnowLine,omitempty"`
	SnowDepth       *float64         `json:"SnowDepth,omitempty"`
	Drift           *SnowDrift       `json:"SnowDriftTID,omitempty"`
	SnowLine        *int             `json:"SnowLine,omitempty"`
	Surface         *SnowSurface     `json:"SnowSurfaceTID,omitempty"`
	Moisture        *SurfaceMoisture `json:"SurfaceWaterContentTID,omitempty"`
}

func (s SnowCover) MarshalJSON() ([]byte, error) {
	w := snowCoverWire{
		LayeredSnowLine: s.LayeredSnowLine,
		NewSnowDepth24:  cmToM(s.Hn24Cm),
		NewSnowLine:     s.NewSnowLine,
		SnowDepth:       cmToM(s.HsCm),
		Drift:           s.Drift,
		SnowLine:        s.SnowLine,
		Surface:         s.Surface,
		Moisture:        s.Moisture,
	}
	if s.Comment != "" {
		w.Comment = &s.Comment
	}
	return json.Marshal(w)
}

func (s *SnowCover) UnmarshalJSON(data []byte) error {
	var w snowCoverWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = SnowCover{
		Drift:           w.Drift,
		Surface:         w.Surface,
		Moisture:        w.Moisture,
		Hn24Cm:          mToCm(w.NewSnowDepth24),
		NewSnowLine:     w.NewSnowLine,
		HsCm:            mToCm(w.SnowDepth),
		SnowLine:        w.SnowLine,
		LayeredSnowLine: w.LayeredSnowLine,
	}
	if w.Comment != nil {
		s.Comment = *w.Comment
	}
	return nil
}

func cmToM(cm *float64) *float64 {
	if cm == nil {
		return nil
	}
	m := *cm / 100
	return &m
}

func mToCm(m *float64) *float64 {
	if m == nil {
		return nil
	}
	cm := *m * 100
	return &cm
}

// CompressionTest is a stability test such as an ECT or CT.
type CompressionTest struct {
	TestResult      *TestResult
	FractureQuality *FractureQuality
	Stability       *Stability
	NumberOfTaps    *int
	FractureDepthCm *float64
	// IsInProfile includes the test in the registration's snow profile.
	IsInProfile *bool
	Comment     string
}

func (c CompressionTest) validate() error {
	if c.TestResult == nil && c.FractureQuality == nil && c.Stability == nil &&
		c.NumberOfTaps == nil && c.FractureDepthCm == nil && c.IsInProfile == nil &&
		c.Comment == "" {
		return fmt.Errorf("%w: compression test", ErrNoObservation)
	}
	noTaps := c.TestResult != nil &&
		(*c.TestResult == ECTPV || *c.TestResult == LBT || *c.TestResult == CTV)
	allTaps := c.TestResult != nil && (*c.TestResult == ECTX || *c.TestResult == CTN)
	if c.NumberOfTaps != nil {
		taps := *c.NumberOfTaps
		if taps <= 0 || taps > 30 {
			return fmt.Errorf("%w: test taps must be in the range 1-30", ErrInvalidRange)
		}
		if noTaps || allTaps && taps != 30 {
			return fmt.Errorf("%w: test result %d incompatible with %d taps", ErrInvalidRange, *c.TestResult, taps)
		}
	}
	if c.FractureDepthCm != nil && allTaps {
		return fmt.Errorf("%w: test result %d cannot have a fracture depth", ErrInvalidRange, *c.TestResult)
	}
	return nil
}

type compressionTestWire struct {
	TestResult      *TestResult      `json:"PropagationTID,omitempty"`
	FractureQuality *FractureQuality `json:"ComprTestFractureTID,omitempty"`
	Stability       *Stability       `json:"StabilityEvalTID,omitempty"`
	TapsFracture    *int             `json:"TapsFracture,omitempty"`
	FractureDepth   *float64         `json:"FractureDepth,omitempty"`
	IsInProfile     *bool            `json:"IncludeInSnowProfile,omitempty"`
	Comment         *string          `json:"Comment,omitempty"`
}

func (c CompressionTest) MarshalJSON() ([]byte, error) {
	w := compressionTestWire{
		TestResult:      c.TestResult,
		FractureQuality: c.FractureQuality,
		Stability:       c.Stability,
		TapsFracture:    c.NumberOfTaps,
		FractureDepth:   cmToM(c.FractureDepthCm),
		IsInProfile:     c.IsInProfile,
	}
	if c.Comment != "" {
		w.Comment = &c.Comment
	}
	return json.Marshal(w)
}

func (c *CompressionTest) UnmarshalJSON(data []byte) error {
	var w compressionTestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = CompressionTest{
		TestResult:      w.TestResult,
		FractureQuality: w.FractureQuality,
		Stability:       w.Stability,
		NumberOfTaps:    w.TapsFracture,
		FractureDepthCm: mToCm(w.FractureDepth),
		IsInProfile:     w.IsInProfile,
	}
	if w.Comment != nil {
		c.Comment = *w.Comment
	}
	return nil
}

// AvalancheProblem is an avalanche problem assessed to be present in
// the terrain around the registration.
type AvalancheProblem struct {
	WeakLayer         *WeakLayer
	LayerDepth        *LayerDepth
	Type              *ProblemAvalancheType
	Sensitivity       *Sensitivity
	Size              *DestructiveSize
	Distribution      *Distribution
	Elevation         *Elevation
	Expositions       *Expositions
	IsEasyPropagation bool
	IsLayerThin       bool
	IsSoftSlabAbove   bool
	IsLargeCrystals   bool
	Comment           string
}

func (p AvalancheProblem) validate() error {
	if p.WeakLayer == nil && p.LayerDepth == nil && p.Type == nil && p.Sensitivity == nil &&
		p.Size == nil && p.Distribution == nil && p.Elevation == nil && p.Expositions == nil &&
		!p.IsEasyPropagation && !p.IsLayerThin && !p.IsSoftSlabAbove && !p.IsLargeCrystals &&
		p.Comment == "" {
		return fmt.Errorf("%w: avalanche problem", ErrNoObservation)
	}
	return nil
}

type avalancheProblemWire struct {
	elevationWire
	WeakLayer    *WeakLayer            `json:"AvalCauseTID,omitempty"`
	LayerDepth   *LayerDepth           `json:"AvalCauseDepthTID,omitempty"`
	AttrLight    *int                  `json:"AvalCauseAttributeLightTID,omitempty"`
	AttrThin     *int                  `json:"AvalCauseAttributeThinTID,omitempty"`
	AttrSoft     *int                  `json:"AvalCauseAttributeSoftTID,omitempty"`
	AttrCrystal  *int                  `json:"AvalCauseAttributeCrystalTID,omitempty"`
	Type         *ProblemAvalancheType `json:"AvalancheExtTID,omitempty"`
	Sensitivity  *Sensitivity          `json:"AvalTriggerSimpleTID,omitempty"`
	Size         *DestructiveSize      `json:"DestructiveSizeTID,omitempty"`
	Distribution *Distribution         `json:"AvalPropagationTID,omitempty"`
	Comment      *string               `json:"Comment,omitempty"`
	Expositions  *Expositions          `json:"ValidExposition,omitempty"`
}

func (p AvalancheProblem) MarshalJSON() ([]byte, error) {
	w := avalancheProblemWire{
		WeakLayer:    p.WeakLayer,
		LayerDepth:   p.LayerDepth,
		Type:         p.Type,
		Sensitivity:  p.Sensitivity,
		Size:         p.Size,
		Distribution: p.Distribution,
		Expositions:  p.Expositions,
	}
	// The attribute codes are bit flags stored in separate columns.
	if p.IsEasyPropagation {
		v := 1
		w.AttrLight = &v
	}
	if p.IsLayerThin {
		v := 2
		w.AttrThin = &v
	}
	if p.IsSoftSlabAbove {
		v := 4
		w.AttrSoft = &v
	}
	if p.IsLargeCrystals {
		v := 8
		w.AttrCrystal = &v
	}
	if p.Comment != "" {
		w.Comment = &p.Comment
	}
	if p.Elevation != nil {
		w.elevationWire = p.Elevation.wire()
	}
	return json.Marshal(w)
}

func (p *AvalancheProblem) UnmarshalJSON(data []byte) error {
	var w avalancheProblemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = AvalancheProblem{
		WeakLayer:         w.WeakLayer,
		LayerDepth:        w.LayerDepth,
		Type:              w.Type,
		Sensitivity:       w.Sensitivity,
		Size:              w.Size,
		Distribution:      w.Distribution,
		Expositions:       w.Expositions,
		IsEasyPropagation: w.AttrLight != nil && *w.AttrLight != 0,
		IsLayerThin:       w.AttrThin != nil && *w.AttrThin != 0,
		IsSoftSlabAbove:   w.AttrSoft != nil && *w.AttrSoft != 0,
		IsLargeCrystals:   w.AttrCrystal != nil && *w.AttrCrystal != 0,
	}
	if w.Format != nil && w.ElevMax != nil {
		p.Elevation = elevationFromWire(w.elevationWire)
	}
	if w.Comment != nil {
		p.Comment = *w.Comment
	}
	return nil
}

// DangerAssessment is an overall danger assessment based on the rest
// of the registration.
type DangerAssessment struct {
	DangerLevel        *DangerLevel
	ForecastEvaluation *ForecastEvaluation
	Assessment         string
	Development        string
	Comment            string
}

func (d DangerAssessment) validate() error {
	if d.DangerLevel == nil && d.ForecastEvaluation == nil && d.Assessment == "" &&
		d.Development == "" && d.Comment == "" {
		return fmt.Errorf("%w: danger assessment", ErrNoObservation)
	}
	return nil
}

type dangerAssessmentWire struct {
	DangerLevel        *DangerLevel        `json:"AvalancheDangerTID,omitempty"`
	ForecastEvaluation *ForecastEvaluation `json:"ForecastCorrectTID,omitempty"`
	Assessment         *string             `json:"AvalancheEvaluation,omitempty"`
	Development        *string             `json:"AvalancheDevelopment,omitempty"`
	Comment            *string             `json:"ForecastComment,omitempty"`
}

func (d DangerAssessment) MarshalJSON() ([]byte, error) {
	w := dangerAssessmentWire{
		DangerLevel:        d.DangerLevel,
		ForecastEvaluation: d.ForecastEvaluation,
	}
	if d.Assessment != "" {
		w.Assessment = &d.Assessment
	}
	if d.Development != "" {
		w.Development = &d.Development
	}
	if d.Comment != "" {
		w.Comment = &d.Comment
	}
	return json.Marshal(w)
}

func (d *DangerAssessment) UnmarshalJSON(data []byte) error {
	var w dangerAssessmentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = DangerAssessment{
		DangerLevel:        w.DangerLevel,
		ForecastEvaluation: w.ForecastEvaluation,
	}
	if w.Assessment != nil {
		d.Assessment = *w.Assessment
	}
	if w.Development != nil {
		d.Development = *w.Development
	}
	if w.Comment != nil {
		d.Comment = *w.Comment
	}
	return nil
}

// Incident is an avalanche incident affecting people or property.
type Incident struct {
	Activity *IncidentActivity
	Extent   *IncidentExtent
	Comment  string
	Urls     []Url
}

// AddUrl appends a link to the incident and returns the incident for
// chaining.
func (i *Incident) AddUrl(url Url) *Incident {
	i.Urls = append(i.Urls, url)
	return i
}

func (i Incident) validate() error {
	if i.Activity == nil && i.Extent == nil && i.Comment == "" {
		return fmt.Errorf("%w: incident", ErrNoObservation)
	}
	return nil
}

type incidentWire struct {
	Activity *IncidentActivity `json:"ActivityInfluencedTID,omitempty"`
	Comment  *string           `json:"Comment,omitempty"`
	Extent   *IncidentExtent   `json:"DamageExtentTID,omitempty"`
	Urls     []Url             `json:"IncidentURLs,omitempty"`
}

func (i Incident) MarshalJSON() ([]byte, error) {
	w := incidentWire{
		Activity: i.Activity,
		Extent:   i.Extent,
		Urls:     i.Urls,
	}
	if i.Comment != "" {
		w.Comment = &i.Comment
	}
	return json.Marshal(w)
}

func (i *Incident) UnmarshalJSON(data []byte) error {
	var w incidentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = Incident{
		Activity: w.Activity,
		Extent:   w.Extent,
		Urls:     w.Urls,
	}
	if w.Comment != nil {
		i.Comment = *w.Comment
	}
	return nil
}

// Note is a general note for a registration.
type Note struct {
	Comment string
	Urls    []Url
}

// AddUrl appends a link to the note and returns the note for chaining.
func (n *Note) AddUrl(url Url) *Note {
	n.Urls = append(n.Urls, url)
	return n
}

func (n Note) validate() error {
	if n.Comment == "" && len(n.Urls) == 0 {
		return fmt.Errorf("%w: note", ErrNoObservation)
	}
	return nil
}

type noteWire struct {
	Comment *string `json:"ObsComment,omitempty"`
	Urls    []Url   `json:"Urls,omitempty"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	w := noteWire{Urls: n.Urls}
	if n.Comment != "" {
		w.Comment = &n.Comment
	}
	return json.Marshal(w)
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var w noteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = Note{Urls: w.Urls}
	if w.Comment != nil {
		n.Comment = *w.Comment
	}
	return nil
}
