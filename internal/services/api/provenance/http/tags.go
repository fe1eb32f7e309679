package http

import (
	"regexp"
	"sync"

	"billnote/internal/core/provenance"
	"billnote/internal/platform/logger"
	"billnote/internal/platform/net/http/bind"
)

var (
	tagsOnce   sync.Once
	tagPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)
)

// registerTags adds platform_tag (tag shaped string) and platform_source
// (one of the three sources) to the shared validator
func registerTags() {
	tagsOnce.Do(func() {
		err := bind.RegisterTag("platform_tag",
			func(fl bind.FieldLevel) bool { return tagPattern.MatchString(fl.Field().String()) },
			map[string]string{
				"en": "{0} must be a platform tag such as bilibili",
				"zh": "{0}必须是平台标识，例如 bilibili",
			})
		if err == nil {
			err = bind.RegisterTag("platform_source",
				func(fl bind.FieldLevel) bool {
					_, ok := provenance.ParseSource(fl.Field().String())
					return ok
				},
				map[string]string{
					"en": "{0} must be one of auto_detected, user_provided or unknown",
					"zh": "{0}必须是 auto_detected、user_provided 或 unknown",
				})
		}
		if err != nil {
			logger.Named("provenance").Panic().Err(err).Msg("register validation tags")
		}
	})
}
