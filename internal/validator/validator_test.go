package validator

import "testing"

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"valid password", "Test123!@#", true},
		{"too short", "Te1!", false},
		{"too long", "Test123!@#Test123!@#Test123!@#", false},
		{"missing uppercase", "test123!@#", false},
		{"missing lowercase", "TEST123!@#", false},
		{"missing digit", "TestTest!@#", false},
		{"missing special character", "Test1234abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.password, "password")
			if gotOK := err == nil; gotOK != tt.wantOK {
				t.Errorf("password %q valid = %v, want %v", tt.password, gotOK, tt.wantOK)
			}
		})
	}
}
