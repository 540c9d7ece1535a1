package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Translator.validate(); err != nil {
		return fmt.Errorf("translator: %w", err)
	}
	return nil
}

func (t *TranslatorConfig) validate() error {
	if t.FuzzyThreshold <= 0 || t.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy_threshold must be in (0,1] (got %v)", t.FuzzyThreshold)
	}
	if t.FeedbackPath == "" {
		return fmt.Errorf("feedback_path must not be empty")
	}
	return nil
}
