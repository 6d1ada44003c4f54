package unit

import "testing"

func TestUnit_IsValid(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want bool
	}{
		{"millimeters is valid", Millimeters, true},
		{"centimeters is valid", Centimeters, true},
		{"meters is valid", Meters, true},
		{"inches is valid", Inches, true},
		{"feet is valid", Feet, true},
		{"empty is invalid", Unit(""), false},
		{"unknown is invalid", Unit("furlong"), false},
		{"uppercase is invalid", Unit("MM"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.IsValid(); got != tt.want {
				t.Errorf("Unit.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnit_Factor(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want float64
	}{
		{"millimeters factor", Millimeters, 1.0},
		{"centimeters factor", Centimeters, 10.0},
		{"meters factor", Meters, 1000.0},
		{"inches factor", Inches, 25.4},
		{"feet factor", Feet, 304.8},
		{"invalid factor", Unit("furlong"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Factor(); got != tt.want {
				t.Errorf("Unit.Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Unit
		wantErr bool
	}{
		{"parse mm", "mm", Millimeters, false},
		{"parse cm", "cm", Centimeters, false},
		{"parse m", "m", Meters, false},
		{"parse in", "in", Inches, false},
		{"parse ft", "ft", Feet, false},
		{"empty string", "", "", true},
		{"unknown unit", "yd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	units := All()
	if len(units) != 5 {
		t.Fatalf("All() returned %d units, want 5", len(units))
	}
	for _, u := range units {
		if !u.IsValid() {
			t.Errorf("All() contains invalid unit %q", u)
		}
	}
}
