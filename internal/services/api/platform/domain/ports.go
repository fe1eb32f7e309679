package domain

import (
	"context"

	"billnote/internal/core/platform"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	Classify(ctx context.Context, in Input) ClassifyOutput
	Describe(ctx context.Context, in Input) platform.Descriptor
	Detect(ctx context.Context, in Input) (platform.Info, error)
	VideoID(ctx context.Context, in Input) (platform.VideoRef, error)
	Selectable(ctx context.Context) []platform.Option
	Normalize(ctx context.Context, in Input) NormalizeOutput
}

// RulesPort is exported to other modules that report on the rule table
type RulesPort interface {
	Rules(ctx context.Context) RulesOutput
}

// ClassifierPort hands the module's classifier to modules that need evidence
type ClassifierPort interface {
	Classifier() *platform.Classifier
}
