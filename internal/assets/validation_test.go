package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "default"},
		{input: "my-style"},
		{input: "my_style"},
		{input: "Page2"},
		{input: "", wantErr: true},
		{input: "../secret", wantErr: true},
		{input: "..\\secret", wantErr: true},
		{input: "style.css", wantErr: true},
		{input: "/etc/passwd", wantErr: true},
		{input: "C:page", wantErr: true},
		{input: "pa\x00ge", wantErr: true},
		{input: strings.Repeat("a", maxAssetNameLength)},
		{input: strings.Repeat("a", maxAssetNameLength+1), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateAssetName_MessageNamesInput(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../evil")
	if err == nil || !strings.Contains(err.Error(), "../evil") {
		t.Errorf("error %v should name the rejected input", err)
	}
}
