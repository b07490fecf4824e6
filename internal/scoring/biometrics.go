package scoring

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	metersPerInch  = 0.0254
	kilogramsPerLb = 0.453592
)

// parseDateOnly keeps the calendar date of an ISO date or timestamp at UTC midnight.
func parseDateOnly(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		iso = iso[:i]
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ChronologicalAge returns whole years between dob and ref. The second return is false
// when dob is missing, unparseable or not strictly before ref.
func ChronologicalAge(dob string, ref time.Time) (int, bool) {
	birth, ok := parseDateOnly(dob)
	if !ok {
		return 0, false
	}
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	if !birth.Before(today) {
		return 0, false
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// CalculateBMI derives BMI from the height ({ft, in}) and weight (lbs) answers.
// Missing or unusable inputs yield 0.
func CalculateBMI(set AnswerSet) float64 {
	height, ok := set.Value("height")
	if !ok || height.Kind != KindRecord {
		return 0
	}
	ft, ok1 := leadingInt(height.Field("ft"), 0)
	in, ok2 := leadingInt(height.Field("in"), 0)
	if !ok1 || !ok2 {
		return 0
	}
	totalInches := ft*12 + in
	if totalInches <= 0 {
		return 0
	}
	weight, _ := set.Value("weight")
	lbs, ok := leadingFloat(weight)
	if !ok || lbs <= 0 {
		return 0
	}
	meters := float64(totalInches) * metersPerInch
	kg := lbs * kilogramsPerLb
	bmi := kg / (meters * meters)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0
	}
	return bmi
}

// leadingInt reads the integer prefix of a value; null reads as def.
func leadingInt(v Value, def int) (int, bool) {
	switch v.Kind {
	case KindNull:
		return def, true
	case KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return 0, false
		}
		return int(math.Trunc(v.Number)), true
	}
	s := strings.TrimSpace(v.String())
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// leadingFloat reads the decimal prefix of a value.
func leadingFloat(v Value) (float64, bool) {
	switch v.Kind {
	case KindNull:
		return 0, false
	case KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return 0, false
		}
		return v.Number, true
	}
	s := strings.TrimSpace(v.String())
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	seenDigit, seenDot := false, false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			seenDigit = true
		} else if c == '.' && !seenDot {
			seenDot = true
		} else {
			break
		}
		end++
	}
	if !seenDigit {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// roundTo rounds half up at the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(x*p+0.5) / p
}

// formatBMI renders a BMI with one decimal
func formatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}
