package bunny

import (
	"context"
	"net/http"
	"net/url"
)

// TranscribeOptions tune a transcription job. Nil pointers and empty
// values are left out of the request body entirely.
type TranscribeOptions struct {
	// Force re-runs transcription even when a transcript exists.
	Force bool
	// TargetLanguages requests translated transcripts.
	TargetLanguages []string
	// GenerateTitles and GenerateDescription ask the service to derive
	// video metadata from the transcript.
	GenerateTitles      *bool
	GenerateDescription *bool
	// SourceLanguage overrides language detection of the audio track.
	SourceLanguage string
}

// TranscribeVideo queues speech transcription of the video into the
// given language.
func (c *Client) TranscribeVideo(ctx context.Context, videoID, language string, opts *TranscribeOptions) (JSON, error) {
	if opts == nil {
		opts = &TranscribeOptions{}
	}

	query := newParams()
	query.setString("language", language)
	query.setBool("force", opts.Force)

	body := map[string]any{}
	if len(opts.TargetLanguages) > 0 {
		body["targetLanguages"] = opts.TargetLanguages
	}
	if opts.GenerateTitles != nil {
		body["generateTitles"] = *opts.GenerateTitles
	}
	if opts.GenerateDescription != nil {
		body["generateDescription"] = *opts.GenerateDescription
	}
	if opts.SourceLanguage != "" {
		body["sourceLanguage"] = opts.SourceLanguage
	}

	return c.do(ctx, http.MethodPost, "videos/"+url.PathEscape(videoID)+"/transcribe", callOptions{
		query:       query.Values,
		body:        body,
		failMsg:     "failed to transcribe video",
		notFoundRef: videoID,
	})
}
