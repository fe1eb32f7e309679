// Package locale holds the message catalog for display names, source labels
// and validation messages. English is the default; Simplified Chinese carries
// the strings the web UI ships with
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a catalog message
type Key = string

// Catalog keys
const (
	PlatformBilibili Key = "platform.bilibili"
	PlatformYouTube  Key = "platform.youtube"
	PlatformLocal    Key = "platform.local"
	PlatformUnknown  Key = "platform.unknown"

	SourceAutoLabel    Key = "source.auto_detected.label"
	SourceAutoDesc     Key = "source.auto_detected.description"
	SourceUserLabel    Key = "source.user_provided.label"
	SourceUserDesc     Key = "source.user_provided.description"
	SourceUnknownLabel Key = "source.unknown.label"
	SourceUnknownDesc  Key = "source.unknown.description"

	ValidateMissing       Key = "validate.missing_fields"
	ValidateNoEvidence    Key = "validate.no_evidence"
	ValidateMismatch      Key = "validate.mismatch"      // detected, asserted
	ValidateUnsupported   Key = "validate.unsupported"   // platform
	ValidateInvalidSource Key = "validate.invalid_source"

	FormURLRequired      Key = "form.url_required"
	FormPlatformRequired Key = "form.platform_required"
	FormSourceRequired   Key = "form.source_required"
	FormFailed           Key = "form.failed"

	DetectRequired    Key = "detect.required"
	DetectUnsupported Key = "detect.unsupported"
	DetectInvalid     Key = "detect.invalid"
	VideoIDFailed     Key = "video_id.failed" // platform
	VideoIDNoPlatform Key = "video_id.no_platform"
)

// Default is the fallback language
var Default = language.English

// Supported lists the catalog languages; Default comes first
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

var messages = map[language.Tag]map[Key]string{
	language.English: {
		PlatformBilibili: "Bilibili",
		PlatformYouTube:  "YouTube",
		PlatformLocal:    "Local video",
		PlatformUnknown:  "Unknown platform",

		SourceAutoLabel:    "Auto-detected",
		SourceAutoDesc:     "Platform detected from the URL",
		SourceUserLabel:    "Manual selection",
		SourceUserDesc:     "Platform chosen by the user",
		SourceUnknownLabel: "Unknown source",
		SourceUnknownDesc:  "Source unknown",

		ValidateMissing:       "URL and platform are required",
		ValidateNoEvidence:    "cannot detect a platform from the URL; auto_detected source is not allowed",
		ValidateMismatch:      "auto-detected platform is %s, but %s was set",
		ValidateUnsupported:   "unsupported platform: %s",
		ValidateInvalidSource: "unknown platform source",

		FormURLRequired:      "video URL required",
		FormPlatformRequired: "platform required",
		FormSourceRequired:   "platform source required",
		FormFailed:           "platform source validation failed",

		DetectRequired:    "video link is required",
		DetectUnsupported: "video platform not supported or link invalid",
		DetectInvalid:     "enter a valid video link",
		VideoIDFailed:     "cannot extract a video id from this %s link",
		VideoIDNoPlatform: "video id extraction does not support this platform",
	},
	language.SimplifiedChinese: {
		PlatformBilibili: "哔哩哔哩",
		PlatformYouTube:  "YouTube",
		PlatformLocal:    "本地视频",
		PlatformUnknown:  "未知平台",

		SourceAutoLabel:    "自动检测",
		SourceAutoDesc:     "URL自动识别平台",
		SourceUserLabel:    "手动选择",
		SourceUserDesc:     "用户手动选择平台",
		SourceUnknownLabel: "未知来源",
		SourceUnknownDesc:  "来源未知",

		ValidateMissing:       "URL和平台信息不能为空",
		ValidateNoEvidence:    "无法从URL自动检测平台，不能设置为自动检测来源",
		ValidateMismatch:      "自动检测到平台为 %s，但设置的是 %s",
		ValidateUnsupported:   "不支持的平台类型: %s",
		ValidateInvalidSource: "未知的平台来源类型",

		FormURLRequired:      "视频URL不能为空",
		FormPlatformRequired: "平台信息不能为空",
		FormSourceRequired:   "平台来源信息不能为空",
		FormFailed:           "平台来源验证失败",

		DetectRequired:    "视频链接不能为空",
		DetectUnsupported: "暂不支持该视频平台或链接格式无效",
		DetectInvalid:     "请输入正确的视频链接",
		VideoIDFailed:     "无法从 %s 平台URL中提取视频ID",
		VideoIDNoPlatform: "视频ID提取不支持该平台",
	},
}

var (
	cat     = build()
	matcher = language.NewMatcher(Supported)
)

func build() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Default))
	for tag, msgs := range messages {
		for k, v := range msgs {
			if err := b.SetString(tag, k, v); err != nil {
				panic(fmt.Sprintf("locale: %s %s: %v", tag, k, err))
			}
		}
	}
	return b
}

// Match maps any tag onto the closest supported language, or Default
func Match(tag language.Tag) language.Tag {
	if tag == language.Und {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Printer returns a printer over the catalog for the closest supported language
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(cat))
}

// T formats key in tag's language
func T(tag language.Tag, key Key, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

// Keys returns every key known to the default language
func Keys() []Key {
	out := make([]Key, 0, len(messages[Default]))
	for k := range messages[Default] {
		out = append(out, k)
	}
	return out
}
