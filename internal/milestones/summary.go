package milestones

// Summary is the compact category view: current value against the next
// unachieved tier.
type Summary struct {
	Title           string `json:"title"`
	CurrentValue    int64  `json:"current_value"`
	CurrentDisplay  string `json:"current_display"`
	NextTier        int64  `json:"next_tier"`
	NextDisplay     string `json:"next_display"`
	ProgressPercent int    `json:"progress_percent"`
}

// TierCard is the per-tier detail view.
type TierCard struct {
	ID              string  `json:"id"`
	Tier            int64   `json:"tier"`
	Display         string  `json:"display"`
	Achieved        bool    `json:"achieved"`
	Progress        float64 `json:"progress"`
	ProgressPercent int     `json:"progress_percent"`
	Flavor          string  `json:"flavor,omitempty"`
}

func (c Category) Summary() Summary {
	next := c.NextTier()
	return Summary{
		Title:           c.Title,
		CurrentValue:    c.CurrentValue,
		CurrentDisplay:  c.FormatValue(c.CurrentValue),
		NextTier:        next,
		NextDisplay:     c.FormatValue(next),
		ProgressPercent: c.ProgressPercent(next),
	}
}

func (c Category) TierCards() []TierCard {
	cards := make([]TierCard, 0, len(c.Tiers))
	for _, tier := range c.Tiers {
		card := TierCard{
			ID:              c.TierID(tier),
			Tier:            tier,
			Display:         c.FormatValue(tier),
			Achieved:        c.Achieved(tier),
			Progress:        c.Progress(tier),
			ProgressPercent: c.ProgressPercent(tier),
		}
		if card.Achieved {
			card.Flavor = c.FlavorText(tier)
		}
		cards = append(cards, card)
	}
	return cards
}
