package service

import "testing"

func TestValidateUsername(t *testing.T) {
	valid := []string{"leon", "Анна", "jean-luc", "ab"}
	for _, name := range valid {
		if err := validateUsername(name); err != nil {
			t.Fatalf("username %q rejected: %v", name, err)
		}
	}

	invalid := []string{"", "leon42", "user name", "a_b", "verylongusername1"}
	for _, name := range invalid {
		if err := validateUsername(name); err != ErrInvalidInput {
			t.Fatalf("username %q: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, defaultPageLimit, 0},
		{-5, -3, defaultPageLimit, 0},
		{50, 10, 50, 10},
		{500, 0, maxPageLimit, 0},
	}
	for _, c := range cases {
		limit, offset := clampPage(c.limit, c.offset)
		if limit != c.wantLimit || offset != c.wantOffset {
			t.Fatalf("clampPage(%d,%d) = (%d,%d), want (%d,%d)",
				c.limit, c.offset, limit, offset, c.wantLimit, c.wantOffset)
		}
	}
}
