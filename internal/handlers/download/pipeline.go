package download

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/vlatan/video-fetch/internal/integrations/rapid"
	"github.com/vlatan/video-fetch/internal/integrations/translate"
	"github.com/vlatan/video-fetch/internal/integrations/yt"
	"github.com/vlatan/video-fetch/internal/models"
)

// Client facing messages
const (
	msgURLRequired = "URL required"
	msgInvalidURL  = "invalid URL"
	msgInternal    = "internal server error"
)

// Failure terminates the pipeline and is served to the client
type Failure struct {
	Status  int
	Message string
	Details any
}

// Pipeline runs the steps of a download request in order.
// Every step receives the output of the previous one.
type Pipeline struct {
	videos      VideoProvider
	transcripts TranscriptProvider
	translator  translate.Translator
	timeout     time.Duration // zero means no timeout
}

// state is passed from step to step
type state struct {
	url      string
	videoID  string
	envelope models.Envelope
}

type step func(ctx context.Context, st *state) *Failure

// Run executes the steps until the first failure
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*models.Envelope, *Failure) {

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	steps := []step{
		p.validate,
		p.extractID,
		p.fetchVideoInfo,
		p.fetchDownloadInfo,
		p.fetchTranscript,
	}

	st := &state{url: rawURL}
	for _, step := range steps {
		if failure := step(ctx, st); failure != nil {
			return nil, failure
		}
	}

	st.envelope.Success = true
	st.envelope.VideoID = st.videoID
	return &st.envelope, nil
}

func (p *Pipeline) validate(ctx context.Context, st *state) *Failure {
	if st.url == "" {
		return &Failure{Status: http.StatusBadRequest, Message: msgURLRequired}
	}
	return nil
}

func (p *Pipeline) extractID(ctx context.Context, st *state) *Failure {
	videoID, ok := yt.ExtractVideoID(st.url)
	if !ok {
		return &Failure{Status: http.StatusBadRequest, Message: msgInvalidURL}
	}

	st.videoID = videoID
	return nil
}

func (p *Pipeline) fetchVideoInfo(ctx context.Context, st *state) *Failure {
	info, err := p.videos.GetVideoInfo(ctx, st.videoID)
	if err != nil {
		return upstreamFailure(err, rapid.ErrVideoInfo)
	}

	st.envelope.VideoInfo = info
	return nil
}

func (p *Pipeline) fetchDownloadInfo(ctx context.Context, st *state) *Failure {
	download, err := p.videos.GetDownloadInfo(ctx, st.videoID)
	if err != nil {
		return upstreamFailure(err, rapid.ErrDownloadInfo)
	}

	st.envelope.Download = download
	return nil
}

// Transcript and translation are optional and never fail the request
func (p *Pipeline) fetchTranscript(ctx context.Context, st *state) *Failure {

	defer func() {
		if err := recover(); err != nil {
			log.Printf("Panic while fetching the transcript for %q: %v", st.videoID, err)
			st.envelope.Transcript = ""
			st.envelope.TranslatedTranscript = ""
		}
	}()

	st.envelope.Transcript = p.transcripts.GetTranscript(ctx, st.videoID)
	if st.envelope.Transcript == "" {
		return nil
	}

	st.envelope.TranslatedTranscript = p.translator.Translate(ctx, st.envelope.Transcript)
	return nil
}

// Map an upstream error to a failure, attaching the provider diagnostic if any
func upstreamFailure(err error, clientErr error) *Failure {
	failure := &Failure{Status: http.StatusInternalServerError, Message: clientErr.Error()}

	var upstreamErr *rapid.UpstreamError
	if errors.As(err, &upstreamErr) {
		failure.Message = upstreamErr.Error()
		if len(upstreamErr.Details) > 0 {
			failure.Details = upstreamErr.Details
		}
		return failure
	}

	// Not a provider error, surface the raw message
	log.Printf("%s; unexpected error: %v", clientErr, err)
	failure.Details = err.Error()
	return failure
}
