package identity

import (
	"errors"
	"fmt"
	"math"
)

// OsuProfile is the subset of the osu! "me" response this backend uses,
// validated at the bridge boundary instead of indexing into raw JSON.
type OsuProfile struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
	Statistics struct {
		GlobalRank *int `json:"global_rank"`
	} `json:"statistics"`
	Badges []struct {
		Description string `json:"description"`
	} `json:"badges"`
}

func (p *OsuProfile) Validate() error {
	if p.ID == 0 {
		return errors.New("osu profile is missing id")
	}
	if p.Username == "" {
		return errors.New("osu profile is missing username")
	}
	return nil
}

// BWSRank applies badge-weighted seeding: rank^(0.9937^badges²), rounded.
// Unranked players seed at 0.
func (p *OsuProfile) BWSRank() int {
	if p.Statistics.GlobalRank == nil {
		return 0
	}
	badges := float64(len(p.Badges))
	exponent := math.Pow(0.9937, badges*badges)
	return int(math.Round(math.Pow(float64(*p.Statistics.GlobalRank), exponent)))
}

// DiscordProfile is the subset of discord's /users/@me response this
// backend uses.
type DiscordProfile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

func (p *DiscordProfile) Validate() error {
	if p.ID == "" {
		return errors.New("discord profile is missing id")
	}
	if p.Username == "" {
		return errors.New("discord profile is missing username")
	}
	return nil
}

func (p *DiscordProfile) Tag() string {
	return fmt.Sprintf("%s#%s", p.Username, p.Discriminator)
}

func (p *DiscordProfile) AvatarURL() string {
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", p.ID, p.Avatar)
}
