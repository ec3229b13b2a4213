package rapid

import (
	"encoding/json"
	"errors"
)

// Client facing errors, one per upstream endpoint
var (
	ErrVideoInfo    = errors.New("error obtaining video information")
	ErrDownloadInfo = errors.New("error obtaining download streams")
)

// UpstreamError is returned when the provider could not serve the request.
// Details holds the raw provider body when there is one.
type UpstreamError struct {
	Err     error
	Details json.RawMessage
}

// Implement error interface
func (u *UpstreamError) Error() string {
	return u.Err.Error()
}

func (u *UpstreamError) Unwrap() error {
	return u.Err
}
