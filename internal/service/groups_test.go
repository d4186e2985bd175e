package service

import (
	"context"
	"testing"
)

func TestRowsByCodeNameRejectsBadInput(t *testing.T) {
	svc := NewGroupService(nil)

	for _, code := range []string{"", "nounderscore", "_cmd", "group_"} {
		if _, err := svc.RowsByCodeName(context.Background(), code); err != ErrInvalidInput {
			t.Fatalf("codename %q: expected ErrInvalidInput, got %v", code, err)
		}
	}
}

func TestSplitCodeName(t *testing.T) {
	cases := []struct {
		codeName       string
		group, command string
	}{
		{"sales_export", "sales", "export"},
		// Only the first underscore separates: the rest belongs to the command.
		{"sales_export_csv", "sales", "export_csv"},
	}
	for _, c := range cases {
		group, command, err := splitCodeName(c.codeName)
		if err != nil {
			t.Fatalf("codename %q: unexpected error %v", c.codeName, err)
		}
		if group != c.group || command != c.command {
			t.Fatalf("codename %q: got (%q, %q), want (%q, %q)",
				c.codeName, group, command, c.group, c.command)
		}
	}
}
