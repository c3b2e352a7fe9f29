package farm

import (
	"fmt"
	"slices"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// Calendar is an in-game date
type Calendar struct {
	Season string `yaml:"season"`
	Day    int    `yaml:"day"`
	Year   int    `yaml:"year"`
}

// NewYear returns spring 1 of year 1
func NewYear() Calendar {
	return Calendar{Season: domain.SeasonSpring, Day: 1, Year: 1}
}

// Next returns the following day, rolling season and year
func (c Calendar) Next() Calendar {
	if c.Day < DaysPerSeason {
		c.Day++
		return c
	}

	c.Day = 1
	i := slices.Index(domain.Seasons, c.Season)
	if i == len(domain.Seasons)-1 {
		c.Year++
	}
	c.Season = domain.Seasons[(i+1)%len(domain.Seasons)]
	return c
}

// Validate checks that the date exists
func (c Calendar) Validate() error {
	if !domain.IsSeason(c.Season) {
		return fmt.Errorf("%w: unknown season %q", ErrInvalidLayout, c.Season)
	}
	if c.Day < 1 || c.Day > DaysPerSeason {
		return fmt.Errorf("%w: day %d outside 1-%d", ErrInvalidLayout, c.Day, DaysPerSeason)
	}
	if c.Year < 1 {
		return fmt.Errorf("%w: year %d", ErrInvalidLayout, c.Year)
	}
	return nil
}

func (c Calendar) String() string {
	return fmt.Sprintf("%s %d, year %d", c.Season, c.Day, c.Year)
}
