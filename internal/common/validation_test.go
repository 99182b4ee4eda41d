package common

import (
	"testing"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name               string
		template           string
		supportedTemplates []string
		expectError        bool
		expectedError      string
	}{
		{
			name:               "valid template - classic",
			template:           "classic",
			supportedTemplates: []string{"classic", "modern", "minimal"},
			expectError:        false,
		},
		{
			name:               "valid template - modern",
			template:           "modern",
			supportedTemplates: []string{"classic", "modern", "minimal"},
			expectError:        false,
		},
		{
			name:               "valid template - minimal",
			template:           "minimal",
			supportedTemplates: []string{"classic", "modern", "minimal"},
			expectError:        false,
		},
		{
			name:               "invalid template - fancy",
			template:           "fancy",
			supportedTemplates: []string{"classic", "modern", "minimal"},
			expectError:        true,
			expectedError:      "unsupported template 'fancy'. Supported templates: [classic modern minimal]",
		},
		{
			name:               "case sensitive - Classic uppercase",
			template:           "Classic",
			supportedTemplates: []string{"classic", "modern", "minimal"},
			expectError:        true,
			expectedError:      "unsupported template 'Classic'. Supported templates: [classic modern minimal]",
		},
		{
			name:               "empty template name",
			template:           "",
			supportedTemplates: []string{"classic", "modern", "minimal"},
			expectError:        true,
			expectedError:      "unsupported template ''. Supported templates: [classic modern minimal]",
		},
		{
			name:               "no restrictions configured",
			template:           "anything",
			supportedTemplates: nil,
			expectError:        false,
		},
		{
			name:               "single supported template",
			template:           "classic",
			supportedTemplates: []string{"classic"},
			expectError:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.template, tt.supportedTemplates)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
					return
				}
				if err.Error() != tt.expectedError {
					t.Errorf("expected error %q, got %q", tt.expectedError, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetSupportedTemplates(t *testing.T) {
	templates := []string{"classic", "modern"}
	got := GetSupportedTemplates(templates)
	if len(got) != 2 || got[0] != "classic" || got[1] != "modern" {
		t.Errorf("expected %v, got %v", templates, got)
	}

	if got := GetSupportedTemplates(nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
