package milestones

// Flavor annotations shown on achieved tier cards. Absence of an entry for
// a (category, tier) pair simply yields no annotation.
var flavorTexts = map[string]map[int64]string{
	"keystrokes": {
		100_000:       "Typed like 100 DIN A4 pages",
		1_000_000:     "Enough keystrokes for a novel",
		10_000_000:    "Could have written 100 fanfictions",
		100_000_000:   "Keyboard? What keyboard?",
		1_000_000_000: "Certified keyboard killer",
	},
	"clicks": {
		50_000:      "Clicked more than your crush's Instagram",
		500_000:     "Professional cookie clicker",
		5_000_000:   "Might be a League player",
		50_000_000:  "Mouse: 'Please stop'",
		500_000_000: "Official mouse abuser award",
	},
	"download": {
		tib:       "500 Netflix movies",
		10 * tib:  "You hoarder!",
		100 * tib: "All of Wikipedia maybe",
		pib:       "You broke the Matrix",
		10 * pib:  "Archive of everything, ever",
	},
	"upload": {
		tib:       "Leaked Marvel script",
		10 * tib:  "Backup in the cloud",
		100 * tib: "Sharing is caring",
		pib:       "New Google Drive",
		10 * pib:  "The cloud is you now",
	},
	"uptime": {
		86_400:        "Online for one full day",
		604_800:       "One week uptime - you okay?",
		31_536_000:    "One year online - digital citizen",
		315_360_000:   "Ten years? You sure?",
		3_153_600_000: "Eternal machine overlord",
	},
	"distance": {
		100:       "Your mouse took a long walk",
		500:       "You've crossed Denmark",
		1_000:     "Roadtrip mouse unlocked",
		5_000:     "You made it coast-to-coast",
		10_000:    "You've seen Europe by scrollwheel",
		50_000:    "You circled the Earth!",
		100_000:   "Halfway to the Moon",
		1_000_000: "Mouse left the solar system",
	},
}

// FlavorText returns the annotation for an achieved tier, or the empty
// string when none is defined.
func (c Category) FlavorText(tier int64) string {
	byTier, ok := flavorTexts[c.Key()]
	if !ok {
		return ""
	}
	return byTier[tier]
}
