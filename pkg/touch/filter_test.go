package touch

import "testing"

func TestFilterAverageAndReset(t *testing.T) {
	var f Filter
	if f.Value() != 0 {
		t.Errorf("empty filter Value() = %d, want 0", f.Value())
	}
	f.Feed(10)
	f.Feed(20)
	if f.Value() != 15 {
		t.Errorf("Value() = %d, want 15", f.Value())
	}
	if f.Stable() {
		t.Error("Stable() with partial window = true, want false")
	}
	f.Reset()
	if f.Value() != 0 || f.Stable() {
		t.Error("Reset() did not clear the window")
	}
}

func TestFilterStability(t *testing.T) {
	tests := []struct {
		name    string
		samples []int
		want    bool
	}{
		{"full window within tolerance", []int{100, 102, 101, 103}, true},
		{"full window at tolerance edge", []int{100, 104, 100, 104}, true},
		{"full window over tolerance", []int{100, 105, 100, 105}, false},
		{"partial window", []int{100, 100, 100}, false},
		{"old outlier evicted", []int{50, 100, 100, 100, 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filter
			for _, s := range tt.samples {
				f.Feed(s)
			}
			if got := f.Stable(); got != tt.want {
				t.Errorf("Stable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSlidingWindow(t *testing.T) {
	var f Filter
	for _, v := range []int{0, 0, 0, 0, 100, 100, 100, 100} {
		f.Feed(v)
	}
	if f.Value() != 100 {
		t.Errorf("Value() after window slid past zeros = %d, want 100", f.Value())
	}
}
