package platform

// Package-level shortcuts over Default()

// Classify returns the platform tag for raw
func Classify(raw string) Tag { return Default().Classify(raw) }

// IsValidFormat reports whether raw is a local path or an absolute URL
func IsValidFormat(raw string) bool { return Default().IsValidFormat(raw) }

// IsSupported reports whether raw belongs to a remotely fetchable platform
func IsSupported(raw string) bool { return Default().IsSupported(raw) }

// IsBlocked reports whether raw names a refused platform
func IsBlocked(raw string) bool { return Default().IsBlocked(raw) }

// Describe aggregates the queries above
func Describe(raw string) Descriptor { return Default().Describe(raw) }

// Detect is the strict classification used before creating a note
func Detect(raw string) (Info, error) { return Default().Detect(raw) }

// ExtractVideoID returns the platform video id carried by raw
func ExtractVideoID(raw string) (VideoRef, error) { return Default().ExtractVideoID(raw) }

// Selectable lists the manual override choices
func Selectable() []Option { return Default().Selectable() }
