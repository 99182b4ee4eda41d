package common

import (
	"fmt"
	"slices"
)

// ValidateTemplate validates a template name against the configured
// supported templates
func ValidateTemplate(template string, supportedTemplates []string) error {
	if len(supportedTemplates) == 0 {
		return nil // No restrictions configured
	}

	if slices.Contains(supportedTemplates, template) {
		return nil
	}

	return fmt.Errorf("unsupported template '%s'. Supported templates: %v",
		template, supportedTemplates)
}

// GetSupportedTemplates returns the list of supported templates
func GetSupportedTemplates(supportedTemplates []string) []string {
	return supportedTemplates
}
