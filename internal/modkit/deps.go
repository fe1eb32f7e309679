package modkit

import (
	"time"

	"billnote/internal/core/platform"
	"billnote/internal/core/provenance"
	"billnote/internal/platform/config"
	"billnote/internal/platform/logger"
)

// Deps holds what every module may use. Nothing here owns I/O
type Deps struct {
	Log        *logger.Logger
	Cfg        config.Conf
	Classifier *platform.Classifier
	Provenance *provenance.Handler

	Service   string
	StartedAt time.Time
}

// WithDefaults fills unset fields with the process defaults
func (d Deps) WithDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Get()
	}
	if d.Classifier == nil {
		d.Classifier = platform.Default()
	}
	if d.Provenance == nil {
		d.Provenance = provenance.Default()
	}
	if d.Service == "" {
		d.Service = "billnote"
	}
	if d.StartedAt.IsZero() {
		d.StartedAt = time.Now()
	}
	return d
}
