package provenance

import (
	"encoding/json"
	"fmt"
	"maps"

	"billnote/internal/core/platform"
)

// Form is the note form as submitted by the UI. Only three fields are read;
// anything else travels through Extra as the raw JSON it arrived as
type Form struct {
	VideoURL       string
	Platform       platform.Tag
	PlatformSource Source
	Extra          map[string]json.RawMessage

	// sent marks the known keys the decoded object carried
	sent fieldSet
}

type fieldSet uint8

const (
	sentVideoURL fieldSet = 1 << iota
	sentPlatform
	sentPlatformSource
)

const (
	keyVideoURL       = "video_url"
	keyPlatform       = "platform"
	keyPlatformSource = "platform_source"
)

// clone copies f one level deep; raw values are never written in place
func (f Form) clone() Form {
	f.Extra = maps.Clone(f.Extra)
	return f
}

// MarshalJSON flattens Extra next to the known keys. A known key is written
// when it is set or when the decoded object carried it
func (f Form) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(f.Extra)+3)
	for k, v := range f.Extra {
		m[k] = v
	}
	if f.VideoURL != "" || f.sent&sentVideoURL != 0 {
		m[keyVideoURL] = f.VideoURL
	}
	if f.Platform != "" || f.sent&sentPlatform != 0 {
		m[keyPlatform] = f.Platform
	}
	if f.PlatformSource != "" || f.sent&sentPlatformSource != 0 {
		m[keyPlatformSource] = f.PlatformSource
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the known keys as strings (null is empty) and keeps the rest in Extra
func (f *Form) UnmarshalJSON(data []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("form: expected a JSON object")
	}

	var out Form
	s, err := take(m, keyVideoURL, sentVideoURL, &out.sent)
	if err != nil {
		return err
	}
	out.VideoURL = s
	if s, err = take(m, keyPlatform, sentPlatform, &out.sent); err != nil {
		return err
	}
	out.Platform = platform.Tag(s)
	if s, err = take(m, keyPlatformSource, sentPlatformSource, &out.sent); err != nil {
		return err
	}
	out.PlatformSource = Source(s)

	if len(m) > 0 {
		out.Extra = m
	}
	*f = out
	return nil
}

// take removes key from m and decodes it as a string, recording its presence in sent
func take(m map[string]json.RawMessage, key string, bit fieldSet, sent *fieldSet) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", nil
	}
	delete(m, key)
	*sent |= bit
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("form: %s must be a string", key)
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// FormValidation is the outcome of Handler.ValidateForm. Errors is never nil
type FormValidation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}
