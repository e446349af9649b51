package safety

import (
	"strings"

	"github.com/in-tuned/emotion-engine/internal/domain"
)

// intlRegion is the guaranteed fallback for unrecognized region codes.
const intlRegion = "INTL"

var hotlines = map[string]domain.Hotline{
	"US": {
		RegionCode: "US",
		Label:      "988 Suicide & Crisis Lifeline",
		Number:     "988",
		URL:        "https://988lifeline.org",
	},
	"CA": {
		RegionCode: "CA",
		Label:      "988 Suicide Crisis Helpline",
		Number:     "988",
	},
	"BR": {
		RegionCode: "BR",
		Label:      "CVV 188 Centro de Valorização da Vida",
		Number:     "188",
		URL:        "https://www.cvv.org.br",
	},
	"PT": {
		RegionCode: "PT",
		Label:      "SOS Voz Amiga",
		Number:     "+351 213 544 545",
		URL:        "https://www.sosvozamiga.org",
	},
	"ES": {
		RegionCode: "ES",
		Label:      "Línea 024 de atención a la conducta suicida",
		Number:     "024",
	},
	"MX": {
		RegionCode: "MX",
		Label:      "Línea de la Vida",
		Number:     "800 911 2000",
	},
	intlRegion: {
		RegionCode: intlRegion,
		Label:      "Local suicide prevention or emergency number",
		Number:     "112 / 911",
		URL:        "https://www.opencounseling.com/suicide-hotlines",
	},
}

// HotlineForRegion resolves the crisis line for a region code. Unknown or
// empty codes always resolve to the international fallback.
func HotlineForRegion(region string) (string, domain.Hotline) {
	code := strings.ToUpper(strings.TrimSpace(region))
	if h, ok := hotlines[code]; ok {
		return code, h
	}
	return intlRegion, hotlines[intlRegion]
}
