package timezone

import (
	"time"
	_ "time/tzdata"

	"rentacar/config"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "UTC"

var (
	appLocation *time.Location
)

func init() {
	appLocation = LoadLocation(config.Get().App.Timezone)
}

// LoadLocation resolves an IANA timezone name, falling back to UTC when it is empty or unknown
func LoadLocation(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = defaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Karachi', 'UTC', 'Asia/Dubai'")
		return time.UTC
	}

	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
	return loc
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

