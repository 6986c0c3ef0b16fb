package crawl

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	hub, err := url.Parse("https://www.nhs.uk/medicines/aspirin/")
	require.NoError(t, err)

	tests := []struct {
		name string
		href string
		want string
	}{
		{"root relative", "/medicines/ibuprofen/", "https://www.nhs.uk/medicines/ibuprofen/"},
		{"page relative", "about-aspirin/", "https://www.nhs.uk/medicines/aspirin/about-aspirin/"},
		{"absolute", "https://www.nhs.uk/conditions/", "https://www.nhs.uk/conditions/"},
		{"fragment only", "#about", "https://www.nhs.uk/medicines/aspirin/"},
		{"fragment stripped", "/medicines/aspirin/about-aspirin/#key-facts", "https://www.nhs.uk/medicines/aspirin/about-aspirin/"},
		{"surrounding space", "  /medicines/  ", "https://www.nhs.uk/medicines/"},
		{"empty", "", ""},
		{"mailto", "mailto:someone@nhs.net", ""},
		{"javascript", "javascript:void(0)", ""},
		{"tel", "tel:111", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.href, hub))
		})
	}
}
