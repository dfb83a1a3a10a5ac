package regobs

import (
	"fmt"
	"math"
)

// The integer codes in this file are the TID vocabularies of the
// observation service's schema. Unknown codes received from the
// service are kept as-is rather than rejected, so every enum type
// round-trips values outside its named set.

// GeoHazardSnow is the geohazard id of snow registrations.
const GeoHazardSnow = 10

// Direction is a compass direction, 45 degrees apart, N at 0.
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Degrees returns the direction as compass degrees.
func (d Direction) Degrees() int {
	return int(d) * 45
}

// DirectionFromDegrees maps compass degrees to the nearest direction.
// Bearings exactly between two directions resolve to the even-indexed
// one, the way the service rounds them.
func DirectionFromDegrees(degrees float64) Direction {
	return Direction((int(math.RoundToEven(degrees/45)) + 8) % 8)
}

// DangerLevel is the standardized avalanche danger scale.
type DangerLevel int

const (
	DangerLow          DangerLevel = 1
	DangerModerate     DangerLevel = 2
	DangerConsiderable DangerLevel = 3
	DangerHigh         DangerLevel = 4
	DangerExtreme      DangerLevel = 5
)

// DestructiveSize is the standardized avalanche size scale, D1-D5.
type DestructiveSize int

const (
	SizeD1      DestructiveSize = 1
	SizeD2      DestructiveSize = 2
	SizeD3      DestructiveSize = 3
	SizeD4      DestructiveSize = 4
	SizeD5      DestructiveSize = 5
	SizeUnknown DestructiveSize = 9
)

// Sensitivity is the sensitivity to triggering of an avalanche problem.
type Sensitivity int

const (
	SensitivityVeryDifficult Sensitivity = 30
	SensitivityDifficult     Sensitivity = 40
	SensitivityEasy          Sensitivity = 50
	SensitivityVeryEasy      Sensitivity = 60
	SensitivitySpontaneous   Sensitivity = 22
)

// Distribution is the terrain distribution of an avalanche problem.
type Distribution int

const (
	DistributionIsolated   Distribution = 1
	DistributionSpecific   Distribution = 2
	DistributionWidespread Distribution = 3
)

// WeakLayer is the kind of weak layer giving rise to an avalanche.
type WeakLayer int

const (
	WeakLayerPP               WeakLayer = 10
	WeakLayerSH               WeakLayer = 11
	WeakLayerFCNearSurface    WeakLayer = 13
	WeakLayerBondingAboveMFcr WeakLayer = 14
	WeakLayerDF               WeakLayer = 15
	WeakLayerDH               WeakLayer = 16
	WeakLayerFCBelowMFcr      WeakLayer = 19
	WeakLayerFCAboveMFcr      WeakLayer = 18
	WeakLayerWaterInSnow      WeakLayer = 22
	WeakLayerGroundMelt       WeakLayer = 20
	WeakLayerLooseSnow        WeakLayer = 24
)

// Source is the kind of source a registration's knowledge stems from.
type Source int

const (
	SourceSeen    Source = 10
	SourceTold    Source = 20
	SourceNews    Source = 21
	SourcePicture Source = 22
	SourceAssumed Source = 23
)

// SpatialPrecision is the margin of error of a position, in metres.
type SpatialPrecision int

const (
	PrecisionExact       SpatialPrecision = 0
	PrecisionHundred     SpatialPrecision = 100
	PrecisionFiveHundred SpatialPrecision = 500
	PrecisionOneKm       SpatialPrecision = 1000
	PrecisionOverKm      SpatialPrecision = -1
)

// ObservationType identifies an observation kind within a registration.
type ObservationType int

const (
	TypeNote              ObservationType = 10
	TypeIncident          ObservationType = 11
	TypeDangerSign        ObservationType = 13
	TypeWeather           ObservationType = 21
	TypeSnowCover         ObservationType = 22
	TypeCompressionTest   ObservationType = 25
	TypeAvalancheObs      ObservationType = 26
	TypeDangerAssessment  ObservationType = 31
	TypeAvalancheProblem  ObservationType = 32
	TypeAvalancheActivity ObservationType = 33
	TypeSnowProfile       ObservationType = 36
)

// ObservationTypes lists every observation kind of a snow registration.
var ObservationTypes = []ObservationType{
	TypeNote,
	TypeIncident,
	TypeDangerSign,
	TypeWeather,
	TypeSnowCover,
	TypeCompressionTest,
	TypeAvalancheObs,
	TypeDangerAssessment,
	TypeAvalancheProblem,
	TypeAvalancheActivity,
	TypeSnowProfile,
}

// Competence is the competence level of an observer.
type Competence int

const (
	CompetenceUnknown            Competence = 0
	CompetenceSnowUnknown        Competence = 100
	CompetenceSnowAutomatic      Competence = 105
	CompetenceSnowBasicSkills    Competence = 110
	CompetenceSnowExperienced    Competence = 115
	CompetenceSnowBasicCourse    Competence = 120
	CompetenceSnowExtendedCourse Competence = 130
	CompetenceSnowAvaForecaster  Competence = 150
)

// DangerSignType is the kind of danger sign observed.
type DangerSignType int

const (
	SignNoSigns          DangerSignType = 1
	SignRecentAvalanches DangerSignType = 2
	SignWhumpfSound      DangerSignType = 3
	SignRecentCracks     DangerSignType = 4
	SignLargeSnowfall    DangerSignType = 5
	SignQuickTempChange  DangerSignType = 7
	SignWaterInSnow      DangerSignType = 8
	SignRecentSnowdrift  DangerSignType = 9
	SignOther            DangerSignType = 99
)

// AvalancheType is the kind of a single observed avalanche.
type AvalancheType int

const (
	// AvalLooseSnow and AvalSlab are generic; prefer the dry/wet variants.
	AvalLooseSnow AvalancheType = 10
	AvalDryLoose  AvalancheType = 12
	AvalWetLoose  AvalancheType = 11
	AvalSlab      AvalancheType = 20
	AvalDrySlab   AvalancheType = 22
	AvalWetSlab   AvalancheType = 21
	AvalGlide     AvalancheType = 27
	AvalSlushFlow AvalancheType = 30
	AvalCornice   AvalancheType = 40
	AvalUnknown   AvalancheType = 99
)

// AvalancheTrigger is what triggered an avalanche.
type AvalancheTrigger int

const (
	TriggerNatural    AvalancheTrigger = 10
	TriggerHuman      AvalancheTrigger = 26
	TriggerSnowmobile AvalancheTrigger = 27
	TriggerRemote     AvalancheTrigger = 22
	TriggerTestSlope  AvalancheTrigger = 23
	TriggerExplosives AvalancheTrigger = 25
	TriggerUnknown    AvalancheTrigger = 99
)

// AvalancheTerrain is the kind of terrain an avalanche released in.
type AvalancheTerrain int

const (
	TerrainSteepSlope   AvalancheTerrain = 10
	TerrainLeeSide      AvalancheTerrain = 20
	TerrainCloseToRidge AvalancheTerrain = 30
	TerrainGully        AvalancheTerrain = 40
	TerrainSlab         AvalancheTerrain = 50
	TerrainBowl         AvalancheTerrain = 60
	TerrainForest       AvalancheTerrain = 70
	TerrainLoggingArea  AvalancheTerrain = 75
	TerrainEverywhere   AvalancheTerrain = 95
	TerrainUnknown      AvalancheTerrain = 99
)

// ActivityTimeframe is the part of the day avalanche activity occurred in.
type ActivityTimeframe string

const (
	TimeframeZeroToSix            ActivityTimeframe = "0-6"
	TimeframeSixToTwelve          ActivityTimeframe = "6-12"
	TimeframeTwelveToEighteen     ActivityTimeframe = "12-18"
	TimeframeEighteenToTwentyFour ActivityTimeframe = "18-24"
)

// ActivityQuantity is the estimated number of observed avalanches.
type ActivityQuantity int

const (
	QuantityNoActivity ActivityQuantity = 1
	QuantityOne        ActivityQuantity = 2
	QuantityFew        ActivityQuantity = 3
	QuantitySeveral    ActivityQuantity = 4
	QuantityNumerous   ActivityQuantity = 5
)

// ActivityAvalancheType is the avalanche type of an activity observation.
type ActivityAvalancheType int

const (
	ActivityDryLoose  ActivityAvalancheType = 10
	ActivityWetLoose  ActivityAvalancheType = 15
	ActivityDrySlab   ActivityAvalancheType = 20
	ActivityWetSlab   ActivityAvalancheType = 25
	ActivityGlide     ActivityAvalancheType = 27
	ActivitySlushFlow ActivityAvalancheType = 30
	ActivityCornice   ActivityAvalancheType = 40
)

// PrecipitationType is the amount and kind of precipitation.
type PrecipitationType int

const (
	PrecipNone         PrecipitationType = 1
	PrecipDrizzle      PrecipitationType = 2
	PrecipRain         PrecipitationType = 3
	PrecipSleet        PrecipitationType = 4
	PrecipSnow         PrecipitationType = 5
	PrecipHail         PrecipitationType = 6
	PrecipFreezingRain PrecipitationType = 8
)

// SnowDrift is the amount of drifting snow.
type SnowDrift int

const (
	DriftNone     SnowDrift = 1
	DriftSome     SnowDrift = 2
	DriftModerate SnowDrift = 3
	DriftHeavy    SnowDrift = 4
)

// SnowSurface is what is found on top of the snowpack.
type SnowSurface int

const (
	SurfaceLooseOver30Cm  SnowSurface = 101
	SurfaceLoose10To30Cm  SnowSurface = 102
	SurfaceLoose1To10Cm   SnowSurface = 103
	SurfaceHoarHard       SnowSurface = 61
	SurfaceHoarSoft       SnowSurface = 62
	SurfaceNewFacets      SnowSurface = 50
	SurfaceCrust          SnowSurface = 107
	SurfaceWindSlabHard   SnowSurface = 105
	SurfaceStormSlabSoft  SnowSurface = 106
	SurfaceWetLoose       SnowSurface = 104
	SurfaceOther          SnowSurface = 108
)

// SurfaceMoisture is the moisture content of the snow surface.
type SurfaceMoisture int

const (
	MoistureNoSnow  SurfaceMoisture = 1
	MoistureDry     SurfaceMoisture = 2
	MoistureMoist   SurfaceMoisture = 3
	MoistureWet     SurfaceMoisture = 4
	MoistureVeryWet SurfaceMoisture = 5
	MoistureSlush   SurfaceMoisture = 6
)

// TestResult is the kind and outcome of a stability test.
type TestResult int

const (
	ECTPV TestResult = 21
	ECTP  TestResult = 22
	ECTN  TestResult = 23
	ECTX  TestResult = 24
	LBT   TestResult = 5
	CTV   TestResult = 11
	CTE   TestResult = 12
	CTM   TestResult = 13
	CTH   TestResult = 14
	CTN   TestResult = 15
)

// FractureQuality is the fracture character of a stability test.
type FractureQuality int

const (
	Q1 FractureQuality = 1
	Q2 FractureQuality = 2
	Q3 FractureQuality = 3
)

// Stability is the snowpack stability according to a test.
type Stability int

const (
	StabilityGood   Stability = 1
	StabilityMedium Stability = 2
	StabilityPoor   Stability = 3
)

// Hardness is the hand hardness scale (F, 4F, 1F, P, K, I) with
// intermediate steps.
type Hardness int

const (
	FistMinus              Hardness = 1
	Fist                   Hardness = 2
	FistPlus               Hardness = 3
	FistToFourFingers      Hardness = 4
	FourFingersMinus       Hardness = 5
	FourFingers            Hardness = 6
	FourFingersPlus        Hardness = 7
	FourFingersToOneFinger Hardness = 8
	OneFingerMinus         Hardness = 9
	OneFinger              Hardness = 10
	OneFingerPlus          Hardness = 11
	OneFingerToPen         Hardness = 12
	PenMinus               Hardness = 13
	Pen                    Hardness = 14
	PenPlus                Hardness = 15
	PenToKnife             Hardness = 16
	KnifeMinus             Hardness = 17
	Knife                  Hardness = 18
	KnifePlus              Hardness = 19
	KnifeToIce             Hardness = 20
	Ice                    Hardness = 21
)

// GrainForm is the ICSSG grain form classification.
type GrainForm int

const (
	PP   GrainForm = 1
	PPCo GrainForm = 2
	PPNd GrainForm = 3
	PPPl GrainForm = 4
	PPSd GrainForm = 5
	PPIr GrainForm = 6
	PPGp GrainForm = 7
	PPHl GrainForm = 8
	PPIp GrainForm = 9
	PPRm GrainForm = 10
	MM   GrainForm = 11
	MMRp GrainForm = 12
	MMCi GrainForm = 13
	DF   GrainForm = 14
	DFDc GrainForm = 15
	DFBk GrainForm = 16
	RG   GrainForm = 17
	RGSr GrainForm = 18
	RGLr GrainForm = 19
	RGWp GrainForm = 20
	RGXf GrainForm = 21
	FC   GrainForm = 22
	FCSo GrainForm = 23
	FCSf GrainForm = 24
	FCXr GrainForm = 25
	DH   GrainForm = 26
	DHCp GrainForm = 27
	DHPr GrainForm = 28
	DHCh GrainForm = 29
	DHLa GrainForm = 30
	DHXr GrainForm = 31
	SH   GrainForm = 32
	SHSu GrainForm = 33
	SHCv GrainForm = 34
	SHXr GrainForm = 35
	MF   GrainForm = 36
	MFCl GrainForm = 37
	MFPc GrainForm = 38
	// MFSl shares 29 with DHCh in the upstream schema.
	MFSl GrainForm = 29
	MFCr GrainForm = 40
	IF   GrainForm = 41
	IFIl GrainForm = 42
	IFIc GrainForm = 43
	IFBi GrainForm = 44
	IFRc GrainForm = 45
	IFSc GrainForm = 46
)

// GrainSize is a grain size in millimetres. The upstream vocabulary
// maps the 0.5 and 0.7 steps to 0.3 as well; the numeric value is what
// round-trips, so the duplication is preserved as-is.
type GrainSize float64

const (
	GrainZeroPointOne   GrainSize = 0.1
	GrainZeroPointThree GrainSize = 0.3
	GrainOne            GrainSize = 1.0
	GrainOnePointFive   GrainSize = 1.5
	GrainTwo            GrainSize = 2.0
	GrainTwoPointFive   GrainSize = 2.5
	GrainThree          GrainSize = 3.0
	GrainThreePointFive GrainSize = 3.5
	GrainFive           GrainSize = 5.0
	GrainFivePointFive  GrainSize = 5.5
	GrainSix            GrainSize = 6.0
	GrainEight          GrainSize = 8.0
	GrainTen            GrainSize = 10.0
)

// Wetness is the moisture content of a snow layer.
type Wetness int

const (
	WetnessD  Wetness = 1
	WetnessDM Wetness = 2
	WetnessM  Wetness = 3
	WetnessMW Wetness = 4
	WetnessW  Wetness = 5
	WetnessWV Wetness = 6
	WetnessV  Wetness = 7
	WetnessVS Wetness = 8
	WetnessS  Wetness = 9
)

// CriticalLayer marks what part of a snow layer is of concern.
type CriticalLayer int

const (
	CriticalUpper CriticalLayer = 11
	CriticalLower CriticalLayer = 12
	CriticalWhole CriticalLayer = 13
)

// LayerDepth is the depth bucket of the layer of concern.
type LayerDepth int

const (
	LayerLessThan50Cm  LayerDepth = 1
	LayerLessThan100Cm LayerDepth = 2
	LayerMoreThan100Cm LayerDepth = 3
)

// ProblemAvalancheType is the avalanche type of an assessed problem.
type ProblemAvalancheType int

const (
	ProblemDryLoose ProblemAvalancheType = 10
	ProblemWetLoose ProblemAvalancheType = 15
	ProblemDrySlab  ProblemAvalancheType = 20
	ProblemWetSlab  ProblemAvalancheType = 25
)

// ForecastEvaluation is an evaluation of the issued forecast.
type ForecastEvaluation int

const (
	ForecastCorrect ForecastEvaluation = 1
	ForecastTooLow  ForecastEvaluation = 2
	ForecastTooHigh ForecastEvaluation = 3
)

// IncidentActivity is the setting an incident occurred in.
type IncidentActivity int

const (
	ActivityBackcountry  IncidentActivity = 111
	ActivityOffPiste     IncidentActivity = 113
	ActivityResort       IncidentActivity = 112
	ActivityNordic       IncidentActivity = 114
	ActivityCrossCountry IncidentActivity = 115
	ActivityClimbing     IncidentActivity = 116
	ActivityFoot         IncidentActivity = 117
	ActivitySnowmobile   IncidentActivity = 130
	ActivityRoad         IncidentActivity = 120
	ActivityRailway      IncidentActivity = 140
	ActivityBuilding     IncidentActivity = 160
	ActivityOther        IncidentActivity = 190
)

// IncidentExtent is the extent of the damages of an incident.
type IncidentExtent int

const (
	ExtentNoEffect       IncidentExtent = 10
	ExtentSAR            IncidentExtent = 13
	ExtentTraffic        IncidentExtent = 15
	ExtentEvacuation     IncidentExtent = 25
	ExtentMaterialOnly   IncidentExtent = 20
	ExtentCloseCall      IncidentExtent = 27
	ExtentBurialUnharmed IncidentExtent = 28
	ExtentPeopleHurt     IncidentExtent = 30
	ExtentFatal          IncidentExtent = 40
	ExtentOther          IncidentExtent = 99
)
