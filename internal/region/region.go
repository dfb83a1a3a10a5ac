// Package region holds the forecast region vocabulary used by both the
// observation service and the weather/forecast data sources.
package region

import "fmt"

// SnowRegion identifies an avalanche forecast region.
type SnowRegion int

const (
	SvalbardOst          SnowRegion = 3001
	SvalbardVest         SnowRegion = 3002
	NordenskioldLand     SnowRegion = 3003
	SvalbardSor          SnowRegion = 3004
	OstFinnmark          SnowRegion = 3005
	Finnmarkskysten      SnowRegion = 3006
	VestFinnmark         SnowRegion = 3007
	Finnmarksvidda       SnowRegion = 3008
	NordTroms            SnowRegion = 3009
	Lyngen               SnowRegion = 3010
	Tromso               SnowRegion = 3011
	SorTroms             SnowRegion = 3012
	IndreTroms           SnowRegion = 3013
	LofotenOgVesteralen  SnowRegion = 3014
	Ofoten               SnowRegion = 3015
	Salten               SnowRegion = 3016
	Svartisen            SnowRegion = 3017
	Helgeland            SnowRegion = 3018
	NordTrondelag        SnowRegion = 3019
	SorTrondelag         SnowRegion = 3020
	YtreNordmore         SnowRegion = 3021
	Trollheimen          SnowRegion = 3022
	Romsdal              SnowRegion = 3023
	Sunnmore             SnowRegion = 3024
	NordGudbrandsdalen   SnowRegion = 3025
	YtreFjordane         SnowRegion = 3026
	IndreFjordane        SnowRegion = 3027
	Jotunheimen          SnowRegion = 3028
	IndreSogn            SnowRegion = 3029
	Voss                 SnowRegion = 3031
	Hallingdal           SnowRegion = 3032
	Hordalandskysten     SnowRegion = 3033
	Hardanger            SnowRegion = 3034
	VestTelemark         SnowRegion = 3035
	Rogalandskysten      SnowRegion = 3036
	Heiane               SnowRegion = 3037
	AgderSor             SnowRegion = 3038
	TelemarkSor          SnowRegion = 3039
	Vestfold             SnowRegion = 3040
	BuskerudSor          SnowRegion = 3041
	OpplandSor           SnowRegion = 3042
	Hedmark              SnowRegion = 3043
	Akershus             SnowRegion = 3044
	Oslo                 SnowRegion = 3045
	Ostfold              SnowRegion = 3046
)

var names = map[SnowRegion]string{
	SvalbardOst:         "Svalbard øst",
	SvalbardVest:        "Svalbard vest",
	NordenskioldLand:    "Nordenskiöld Land",
	SvalbardSor:         "Svalbard sør",
	OstFinnmark:         "Øst-Finnmark",
	Finnmarkskysten:     "Finnmarkskysten",
	VestFinnmark:        "Vest-Finnmark",
	Finnmarksvidda:      "Finnmarksvidda",
	NordTroms:           "Nord-Troms",
	Lyngen:              "Lyngen",
	Tromso:              "Tromsø",
	SorTroms:            "Sør-Troms",
	IndreTroms:          "Indre Troms",
	LofotenOgVesteralen: "Lofoten og Vesterålen",
	Ofoten:              "Ofoten",
	Salten:              "Salten",
	Svartisen:           "Svartisen",
	Helgeland:           "Helgeland",
	NordTrondelag:       "Nord-Trøndelag",
	SorTrondelag:        "Sør-Trøndelag",
	YtreNordmore:        "Ytre Nordmøre",
	Trollheimen:         "Trollheimen",
	Romsdal:             "Romsdal",
	Sunnmore:            "Sunnmøre",
	NordGudbrandsdalen:  "Nord-Gudbrandsdalen",
	YtreFjordane:        "Ytre Fjordane",
	IndreFjordane:       "Indre Fjordane",
	Jotunheimen:         "Jotunheimen",
	IndreSogn:           "Indre Sogn",
	Voss:                "Voss",
	Hallingdal:          "Hallingdal",
	Hordalandskysten:    "Hordalandskysten",
	Hardanger:           "Hardanger",
	VestTelemark:        "Vest-Telemark",
	Rogalandskysten:     "Rogalandskysten",
	Heiane:              "Heiane",
	AgderSor:            "Agder sør",
	TelemarkSor:         "Telemark sør",
	Vestfold:            "Vestfold",
	BuskerudSor:         "Buskerud sør",
	OpplandSor:          "Oppland sør",
	Hedmark:             "Hedmark",
	Akershus:            "Akershus",
	Oslo:                "Oslo",
	Ostfold:             "Østfold",
}

func (r SnowRegion) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return fmt.Sprintf("Unknown region (%d)", int(r))
}

// Valid reports whether r is a known forecast region.
func (r SnowRegion) Valid() bool {
	_, ok := names[r]
	return ok
}

// All returns every known region in ascending id order.
func All() []SnowRegion {
	regions := make([]SnowRegion, 0, len(names))
	for r := SvalbardOst; r <= Ostfold; r++ {
		if r.Valid() {
			regions = append(regions, r)
		}
	}
	return regions
}

// SvalbardRegions are the regions on the Svalbard archipelago.
var SvalbardRegions = []SnowRegion{
	SvalbardOst,
	SvalbardVest,
	NordenskioldLand,
	SvalbardSor,
}

// ARegions receive daily assessed forecasts during the season.
var ARegions = []SnowRegion{
	NordenskioldLand,
	Finnmarkskysten,
	VestFinnmark,
	NordTroms,
	Lyngen,
	Tromso,
	SorTroms,
	IndreTroms,
	LofotenOgVesteralen,
	Ofoten,
	Salten,
	Svartisen,
	Helgeland,
	Trollheimen,
	Romsdal,
	Sunnmore,
	IndreFjordane,
	Jotunheimen,
	IndreSogn,
	Voss,
	Hallingdal,
	Hardanger,
	VestTelemark,
	Heiane,
}

// BRegions only receive forecasts on demand.
var BRegions = func() []SnowRegion {
	a := make(map[SnowRegion]bool, len(ARegions))
	for _, r := range ARegions {
		a[r] = true
	}
	var b []SnowRegion
	for _, r := range All() {
		if !a[r] {
			b = append(b, r)
		}
	}
	return b
}()

// Mainland filters out the Svalbard regions.
func Mainland(regions []SnowRegion) []SnowRegion {
	svalbard := make(map[SnowRegion]bool, len(SvalbardRegions))
	for _, r := range SvalbardRegions {
		svalbard[r] = true
	}
	var mainland []SnowRegion
	for _, r := range regions {
		if !svalbard[r] {
			mainland = append(mainland, r)
		}
	}
	return mainland
}

// DefaultRoof is used when a region has no roof entry.
const DefaultRoof = 2500

var roofs = map[SnowRegion]int{
	SvalbardOst:         1500,
	SvalbardVest:        1200,
	NordenskioldLand:    800,
	SvalbardSor:         800,
	OstFinnmark:         1000,
	Finnmarkskysten:     1000,
	VestFinnmark:        1200,
	Finnmarksvidda:      1000,
	NordTroms:           1500,
	Lyngen:              1500,
	Tromso:              1000,
	SorTroms:            1000,
	IndreTroms:          1500,
	LofotenOgVesteralen: 1000,
	Ofoten:              1500,
	Salten:              1500,
	Svartisen:           1500,
	Helgeland:           1500,
	NordTrondelag:       1500,
	SorTrondelag:        1500,
	YtreNordmore:        1000,
	Trollheimen:         2000,
	Romsdal:             2000,
	Sunnmore:            2000,
	NordGudbrandsdalen:  2000,
	YtreFjordane:        1500,
	IndreFjordane:       2000,
	Jotunheimen:         2500,
	IndreSogn:           2000,
	Voss:                1500,
	Hallingdal:          2000,
	Hordalandskysten:    1000,
	Hardanger:           2000,
	VestTelemark:        1500,
	Rogalandskysten:     1000,
	Heiane:              1500,
	AgderSor:            1000,
	TelemarkSor:         1500,
	Vestfold:            800,
	BuskerudSor:         1500,
	OpplandSor:          1500,
	Hedmark:             2000,
	Akershus:            800,
	Oslo:                600,
	Ostfold:             400,
}

// Roof returns the highest elevation of the region, used as the upper
// bound when an elevation band is open-ended upwards.
func Roof(r SnowRegion) int {
	if roof, ok := roofs[r]; ok {
		return roof
	}
	return DefaultRoof
}
