package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConvertCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"to-relative", []string{"convert", "to-relative", "--value", "0.25", "--total", "4.5", "--slots", "2"}, "0.1176", false},
		{"to-absolute prints inches", []string{"convert", "to-absolute", "--value", "0.1176", "--total", "4.5", "--slots", "2"}, "0.250", false},
		{"to-absolute zero", []string{"convert", "to-absolute", "--value", "0", "--total", "4.5", "--slots", "2"}, "0.000", false},
		{"no slots", []string{"convert", "to-relative", "--value", "0.25", "--total", "4.5", "--slots", "0"}, "", true},
		{"missing flag", []string{"convert", "to-absolute", "--value", "0.1"}, "", true},
		{"no room", []string{"convert", "to-relative", "--value", "3", "--total", "4", "--slots", "3"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			root := quietCLI().RootCommand()
			root.SetArgs(tt.args)
			root.SetOut(&out)
			root.SetErr(&out)
			root.SilenceErrors = true

			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
