package plan

import "testing"

// TestComputeBMR_Male verifies the male Mifflin-St Jeor constant.
// 10*70 + 6.25*175 - 5*30 + 5 = 700 + 1093.75 - 150 + 5 = 1648.75 → 1649.
func TestComputeBMR_Male(t *testing.T) {
	bmr := ComputeBMR(SexMale, 30, 175, 70)
	if bmr != 1649 {
		t.Errorf("male BMR = %d, want 1649", bmr)
	}
}

// TestComputeBMR_Female verifies the female constant: same inputs as the
// male test but -161 instead of +5: 1482.75 → 1483.
func TestComputeBMR_Female(t *testing.T) {
	bmr := ComputeBMR(SexFemale, 30, 175, 70)
	if bmr != 1483 {
		t.Errorf("female BMR = %d, want 1483", bmr)
	}
}

func TestComputeTDEE(t *testing.T) {
	cases := []struct {
		name   string
		bmr    int
		factor float64
		want   int
	}{
		{"sedentary", 1649, 1.2, 1979},
		{"very active", 1649, 1.9, 3133},
		{"zero factor yields zero", 1649, 0, 0},
		{"negative factor yields zero", 1649, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTDEE(tc.bmr, tc.factor); got != tc.want {
				t.Errorf("ComputeTDEE(%d, %v) = %d, want %d", tc.bmr, tc.factor, got, tc.want)
			}
		})
	}
}

func TestResolveActivityFactor(t *testing.T) {
	t.Run("NamedLevel", func(t *testing.T) {
		f, err := ResolveActivityFactor("moderate", 0)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if f != 1.55 {
			t.Errorf("Expected 1.55, got %v", f)
		}
	})

	t.Run("DirectFactor", func(t *testing.T) {
		f, err := ResolveActivityFactor("", 1.42)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if f != 1.42 {
			t.Errorf("Expected 1.42, got %v", f)
		}
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		if _, err := ResolveActivityFactor("couch", 0); err == nil {
			t.Error("Expected an error for unknown activity level, got nil")
		}
	})

	t.Run("MissingBoth", func(t *testing.T) {
		if _, err := ResolveActivityFactor("", 0); err == nil {
			t.Error("Expected an error when neither form is usable, got nil")
		}
	})
}
