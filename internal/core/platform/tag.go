package platform

import (
	"billnote/internal/core/locale"

	"golang.org/x/text/language"
)

// Tag names a video source platform
type Tag string

// The closed set of tags the embedded rule table produces
const (
	Bilibili Tag = "bilibili"
	YouTube  Tag = "youtube"
	Local    Tag = "local"
	Unknown  Tag = "unknown"
)

func (t Tag) String() string { return string(t) }

var displayKeys = map[Tag]locale.Key{
	Bilibili: locale.PlatformBilibili,
	YouTube:  locale.PlatformYouTube,
	Local:    locale.PlatformLocal,
	Unknown:  locale.PlatformUnknown,
}

// DisplayName returns the label for t in the default language.
// Unrecognized tags get the unknown label
func DisplayName(t Tag) string { return DisplayNameIn(t, locale.Default) }

// DisplayNameIn is DisplayName in lang
func DisplayNameIn(t Tag, lang language.Tag) string {
	key, ok := displayKeys[t]
	if !ok {
		key = locale.PlatformUnknown
	}
	return locale.T(lang, key)
}
