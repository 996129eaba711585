// Package song holds the client-facing shape of catalog tracks.
package song

import (
	"github.com/samber/lo"

	"github.com/xeptore/jamlist/catalog"
	"github.com/xeptore/jamlist/mathutil"
)

type Song struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration int64  `json:"duration"`
	Image    string `json:"image"`
	Audio    string `json:"audio"`
}

func FromTrack(t catalog.Track) Song {
	return Song{
		ID:       int64(t.ID),
		Title:    t.Name,
		Artist:   t.ArtistName,
		Duration: int64(t.Duration),
		Image:    t.Image,
		Audio:    t.Audio,
	}
}

// FromTracks keeps the input order and never returns nil.
func FromTracks(tracks []catalog.Track) []Song {
	return lo.Map(tracks, func(t catalog.Track, _ int) Song { return FromTrack(t) })
}

// TotalMinutes sums durations in seconds and rounds the result to whole
// minutes, halves away from zero.
func TotalMinutes(songs []Song) int64 {
	seconds := lo.SumBy(songs, func(s Song) int64 { return s.Duration })
	return mathutil.RoundDiv(seconds, 60)
}
