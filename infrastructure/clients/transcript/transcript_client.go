package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"video-summarizer/domain/model"
	"video-summarizer/domain/repository"
	"video-summarizer/infrastructure/logger"
)

const (
	watchPageURL    = "https://www.youtube.com/watch?v=%s"
	captionsMarker  = "\"captions\":"
	shortLinkMarker = "youtu.be/"
)

// ErrVideoUnavailable indicates the watch page could not be retrieved
type ErrVideoUnavailable struct {
	VideoID string
	Err     error
}

func (e *ErrVideoUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s is unavailable: %v", e.VideoID, e.Err)
	}
	return fmt.Sprintf("video %s is unavailable", e.VideoID)
}

func (e *ErrVideoUnavailable) Unwrap() error {
	return e.Err
}

// ErrTranscriptsDisabled indicates the video exists but exposes no caption tracks
type ErrTranscriptsDisabled struct {
	VideoID string
}

func (e *ErrTranscriptsDisabled) Error() string {
	return fmt.Sprintf("transcripts are disabled for video %s", e.VideoID)
}

// ErrNoTranscriptFound indicates no caption track matched the language chain
type ErrNoTranscriptFound struct {
	VideoID   string
	Languages []string
}

func (e *ErrNoTranscriptFound) Error() string {
	return fmt.Sprintf("no transcript found for video %s in languages %v", e.VideoID, e.Languages)
}

// Client represents the YouTube caption scraping client
type Client struct {
	httpClient *http.Client
}

// Config represents transcript client configuration
type Config struct {
	HTTPClient *http.Client
}

// NewTranscriptClient creates a new caption scraping client
func NewTranscriptClient(config *Config) repository.ITranscript {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient}
}

// ExtractVideoID pulls the video identifier out of a YouTube URL. The second
// return value is false when the input carries no identifier. Malformed input
// never fails; it yields absence.
func ExtractVideoID(rawURL string) (string, bool) {
	if parsed, err := url.Parse(rawURL); err == nil {
		if videoID := parsed.Query().Get("v"); videoID != "" {
			return videoID, true
		}
	}
	if idx := strings.Index(rawURL, shortLinkMarker); idx != -1 {
		videoID := rawURL[idx+len(shortLinkMarker):]
		if q := strings.Index(videoID, "?"); q != -1 {
			videoID = videoID[:q]
		}
		if videoID != "" {
			return videoID, true
		}
	}
	return "", false
}

// Fetch retrieves the caption track for videoID in the first language from
// the preference chain that has one, and returns its timed text.
func (c *Client) Fetch(ctx context.Context, videoID string, languages []string) (*model.Transcript, error) {
	pageHTML, err := c.fetchWatchPage(ctx, videoID)
	if err != nil {
		return nil, err
	}

	tracks, err := extractCaptionTracks(pageHTML, videoID)
	if err != nil {
		return nil, err
	}

	track, position := selectCaptionTrack(tracks, languages)
	if track == nil {
		return nil, &ErrNoTranscriptFound{VideoID: videoID, Languages: languages}
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"video_id":  videoID,
		"language":  track.LanguageCode,
		"position":  position,
		"generated": track.Kind == "asr",
	}).Info("Caption track selected")

	segments, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timed text for video %s: %w", videoID, err)
	}

	return &model.Transcript{
		VideoID:      videoID,
		Language:     track.Name.SimpleText,
		LanguageCode: track.LanguageCode,
		IsGenerated:  track.Kind == "asr",
		Segments:     segments,
	}, nil
}

func (c *Client) fetchWatchPage(ctx context.Context, videoID string) (string, error) {
	if strings.TrimSpace(videoID) == "" {
		return "", &ErrVideoUnavailable{VideoID: videoID}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(watchPageURL, videoID), nil)
	if err != nil {
		return "", &ErrVideoUnavailable{VideoID: videoID, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ErrVideoUnavailable{VideoID: videoID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ErrVideoUnavailable{VideoID: videoID, Err: fmt.Errorf("watch page returned %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ErrVideoUnavailable{VideoID: videoID, Err: err}
	}
	return string(body), nil
}

type captionsData struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []captionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// extractCaptionTracks locates the embedded "captions": JSON object in the
// watch page markup and decodes its caption track list.
func extractCaptionTracks(pageHTML, videoID string) ([]captionTrack, error) {
	startIndex := strings.Index(pageHTML, captionsMarker)
	if startIndex == -1 {
		// No captions object: a page without a playability status is not a
		// video page at all; otherwise the video has captions turned off.
		if !strings.Contains(pageHTML, "\"playabilityStatus\":") {
			return nil, &ErrVideoUnavailable{VideoID: videoID}
		}
		return nil, &ErrTranscriptsDisabled{VideoID: videoID}
	}

	jsonStart := strings.Index(pageHTML[startIndex:], "{")
	if jsonStart == -1 {
		return nil, fmt.Errorf("captions JSON start not found for video %s", videoID)
	}
	jsonStart += startIndex

	braceCount := 1
	jsonEnd := -1
	for i := jsonStart + 1; i < len(pageHTML) && jsonEnd == -1; i++ {
		switch pageHTML[i] {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				jsonEnd = i + 1
			}
		}
	}
	if jsonEnd == -1 {
		return nil, fmt.Errorf("captions JSON end not found for video %s", videoID)
	}

	var captions captionsData
	if err := json.Unmarshal([]byte(pageHTML[jsonStart:jsonEnd]), &captions); err != nil {
		return nil, fmt.Errorf("failed to parse captions JSON for video %s: %w", videoID, err)
	}

	tracks := captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, &ErrTranscriptsDisabled{VideoID: videoID}
	}
	return tracks, nil
}

// selectCaptionTrack walks the preference chain in order and returns the
// first matching track plus its chain position. Language codes match
// exactly; within one language a manually created track wins over a
// generated ("asr") one.
func selectCaptionTrack(tracks []captionTrack, languages []string) (*captionTrack, int) {
	for position, language := range languages {
		var generated *captionTrack
		for i := range tracks {
			if tracks[i].LanguageCode != language {
				continue
			}
			if tracks[i].Kind != "asr" {
				return &tracks[i], position
			}
			if generated == nil {
				generated = &tracks[i]
			}
		}
		if generated != nil {
			return generated, position
		}
	}
	return nil, -1
}

func (c *Client) fetchTimedText(ctx context.Context, baseURL string) ([]model.TranscriptSegment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timed text request returned %s", resp.Status)
	}

	var timedText struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Start float64 `xml:"start,attr"`
			Dur   float64 `xml:"dur,attr"`
			Text  string  `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.NewDecoder(resp.Body).Decode(&timedText); err != nil {
		return nil, err
	}

	segments := make([]model.TranscriptSegment, 0, len(timedText.Texts))
	for _, text := range timedText.Texts {
		segments = append(segments, model.TranscriptSegment{
			Text:     html.UnescapeString(text.Text),
			Start:    text.Start,
			Duration: text.Dur,
		})
	}
	return segments, nil
}
