package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context already canceled: %w", err)
	}
	return nil
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateLearnedPattern(p *model.LearnedPattern) error {
	if p == nil {
		return errors.New("learned pattern cannot be nil")
	}
	if p.Fingerprint == "" {
		return errors.New("learned pattern fingerprint cannot be empty")
	}
	if p.Category == "" || p.Category == model.CategoryUnknown {
		return fmt.Errorf("learned pattern category %q is not cacheable", p.Category)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("learned pattern confidence %f out of range", p.Confidence)
	}
	if p.SeenAt.IsZero() {
		return errors.New("learned pattern seen_at cannot be zero")
	}
	return nil
}
