package ytmusic

import (
	"fmt"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// usable reports whether a raw entry can become a playable track. The
// upstream mixes albums, artists and playlists into song searches; songs
// and anything else carrying a video ID survive, but an entry with no
// video ID can never be played and is dropped even when typed as a song.
func (r searchResult) usable() bool {
	return r.VideoID != ""
}

func mapResultToDomain(r searchResult) domain.Track {
	title := r.Name
	if title == "" {
		title = r.Title
	}
	if title == "" {
		title = domain.UnknownTitle
	}

	artist := ""
	if r.Artist != nil {
		artist = r.Artist.Name
	}
	if artist == "" && len(r.Artists) > 0 {
		artist = r.Artists[0].Name
	}
	if artist == "" {
		artist = domain.UnknownArtist
	}

	thumb := ""
	if len(r.Thumbnails) > 0 {
		thumb = r.Thumbnails[0].URL
	}
	if thumb == "" {
		thumb = fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", r.VideoID)
	}

	album := ""
	if r.Album != nil {
		album = r.Album.Name
	}

	return domain.Track{
		ID:        "yt-" + r.VideoID,
		Title:     title,
		Artist:    artist,
		VideoID:   r.VideoID,
		Thumbnail: thumb,
		Duration:  string(r.Duration),
		Album:     album,
	}
}
