package date

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"31.12.2020", New(2020, time.December, 31), false},
		{"01.02.2021", New(2021, time.February, 1), false},
		{"1.2.2021", New(2021, time.February, 1), false},
		{"29.02.2020", New(2020, time.February, 29), false},
		{"29.02.2021", Date{}, true},
		{"32.01.2021", Date{}, true},
		{"2020-12-31", Date{}, true},
		{"31.12.20", Date{}, true},
		{"31/12/2020", Date{}, true},
		{" 31.12.2020", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	d := MustParse("31.12.2020")
	if d.Day() != 31 || d.Month() != time.December || d.Year() != 2020 {
		t.Errorf("MustParse(%q) = (%d, %d, %d), want (31, 12, 2020)", "31.12.2020", d.Day(), d.Month(), d.Year())
	}
}

func TestString(t *testing.T) {
	if got, want := New(2021, time.March, 5).String(), "05.03.2021"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompare(t *testing.T) {
	a, b := MustParse("01.01.2020"), MustParse("02.01.2020")
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not consistent for %v and %v", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After are not consistent for %v and %v", a, b)
	}
}

func TestDate_UnmarshalYAML(t *testing.T) {
	var v struct {
		On Date `yaml:"day"`
	}
	if err := yaml.Unmarshal([]byte("day: 15.06.2019\n"), &v); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if want := New(2019, time.June, 15); v.On != want {
		t.Errorf("yaml.Unmarshal() = %v, want %v", v.On, want)
	}

	if err := yaml.Unmarshal([]byte("day: 2019-06-15\n"), &v); err == nil {
		t.Errorf("yaml.Unmarshal() of an ISO date should fail")
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2019, time.June, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"15.06.2019"` {
		t.Errorf("json.Marshal() = %s, want %q", data, "15.06.2019")
	}
}

func TestRange(t *testing.T) {
	r := Range{From: MustParse("01.01.2020"), To: MustParse("31.12.2020")}
	tests := []struct {
		on   string
		want bool
	}{
		{"01.01.2020", true},
		{"15.06.2020", true},
		{"31.12.2020", true},
		{"31.12.2019", false},
		{"01.01.2021", false},
	}
	for _, tt := range tests {
		if got := r.Contains(MustParse(tt.on)); got != tt.want {
			t.Errorf("%v.Contains(%s) = %v, want %v", r, tt.on, got, tt.want)
		}
	}
	if !r.Valid() {
		t.Errorf("%v.Valid() = false, want true", r)
	}
	if (Range{From: r.To, To: r.From}).Valid() {
		t.Errorf("reversed range should not be valid")
	}
}
