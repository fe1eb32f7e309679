// Package service runs platform queries in the caller's language
package service

import (
	"context"

	"billnote/internal/core/locale"
	"billnote/internal/core/normalize"
	"billnote/internal/core/platform"
	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"
	"billnote/internal/services/api/platform/domain"
)

// Service is the platform service contract
type Service interface {
	domain.ServicePort
	domain.RulesPort
	domain.ClassifierPort
}

// Svc implements Service over a classifier
type Svc struct {
	c *platform.Classifier
}

// New constructs the service; c must not be nil
func New(c *platform.Classifier) *Svc {
	if c == nil {
		panic("platform.Service requires a classifier")
	}
	return &Svc{c: c}
}

func (s *Svc) in(ctx context.Context) *platform.Classifier {
	return s.c.WithLanguage(pnet.Locale(ctx, locale.Default))
}

// Classifier returns the underlying classifier in the default language
func (s *Svc) Classifier() *platform.Classifier { return s.c }

// Classify returns the tag and its label
func (s *Svc) Classify(ctx context.Context, in domain.Input) domain.ClassifyOutput {
	c := s.in(ctx)
	tag := c.Classify(in.Input)
	return domain.ClassifyOutput{Platform: tag, DisplayName: c.DisplayName(tag)}
}

// Describe aggregates the classifier queries
func (s *Svc) Describe(ctx context.Context, in domain.Input) platform.Descriptor {
	return s.in(ctx).Describe(in.Input)
}

// Detect is the strict classification
func (s *Svc) Detect(ctx context.Context, in domain.Input) (platform.Info, error) {
	info, err := s.in(ctx).Detect(in.Input)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Bool("blocked", s.c.IsBlocked(in.Input)).Msg("detect rejected input")
		return platform.Info{}, err
	}
	return info, nil
}

// VideoID extracts the platform video id
func (s *Svc) VideoID(ctx context.Context, in domain.Input) (platform.VideoRef, error) {
	return s.in(ctx).ExtractVideoID(in.Input)
}

// Selectable lists the manual override choices
func (s *Svc) Selectable(ctx context.Context) []platform.Option {
	return s.in(ctx).Selectable()
}

// Normalize cleans a pasted link and classifies the result
func (s *Svc) Normalize(_ context.Context, in domain.Input) domain.NormalizeOutput {
	clean := normalize.Link(in.Input)
	return domain.NormalizeOutput{
		Input:      in.Input,
		Normalized: clean,
		Changed:    clean != in.Input,
		Platform:   s.c.Classify(clean),
	}
}

// Rules reports the rule table
func (s *Svc) Rules(context.Context) domain.RulesOutput {
	return domain.RulesOutput{Rules: s.c.Rules(), Blocked: s.c.BlockedKeywords()}
}
