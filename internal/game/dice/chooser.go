package dice

//go:generate mockgen -destination=mock/mock_chooser.go -package=mockdice -source=chooser.go

import "go.uber.org/zap"

// Chooser picks one entry from a fixed, finite set of options.
//
// Implementations must choose uniformly and independently on every call.
type Chooser interface {
	// Choose returns one element of options. label names the table being drawn
	// from and is used for diagnostics only.
	//
	// Precondition: len(options) > 0.
	Choose(label string, options []string) string
}

// SourceChooser implements Chooser on top of a Source, logging every pick at
// debug level.
type SourceChooser struct {
	src    Source
	logger *zap.Logger
}

// NewChooser returns a Chooser drawing indices from src.
//
// Precondition: src and logger must be non-nil.
func NewChooser(src Source, logger *zap.Logger) *SourceChooser {
	return &SourceChooser{src: src, logger: logger}
}

// Choose returns options[src.Intn(len(options))].
//
// Precondition: len(options) > 0. Panics otherwise.
// Postcondition: the returned value is an element of options.
func (c *SourceChooser) Choose(label string, options []string) string {
	if len(options) == 0 {
		panic("dice: Choose called with no options for " + label)
	}
	idx := c.src.Intn(len(options))
	c.logger.Debug("random choice",
		zap.String("table", label),
		zap.Int("index", idx),
		zap.String("value", options[idx]),
	)
	return options[idx]
}
