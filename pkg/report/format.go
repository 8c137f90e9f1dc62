package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	precision = 8
	lineWidth = 75
)

// PrintCoefficients writes the fitted parameters as two lines.
func PrintCoefficients(w io.Writer, coef []float64, intercept float64) error {
	if _, err := fmt.Fprintf(w, "Coefficients: %s\n", FormatArray(coef)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Intercept: %s\n", FormatScalar(intercept))
	return err
}

// FormatScalar prints the shortest representation that round-trips,
// keeping a decimal point and switching to exponent form outside
// 1e-4 <= |v| < 1e16.
func FormatScalar(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	exp := exponent(v)
	if exp < -4 || exp >= 16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatArray renders x in bracketed columns with aligned decimal points.
// Lines wrap at 75 columns with continuation lines indented by one space.
func FormatArray(x []float64) string {
	if len(x) == 0 {
		return "[]"
	}
	var cells []string
	if useExponent(x) {
		cells = exponentCells(x)
	} else {
		cells = fixedCells(x)
	}

	var b strings.Builder
	b.WriteByte('[')
	col := 1
	for i, c := range cells {
		sep := ""
		if i > 0 {
			sep = " "
		}
		// room for the separator, the cell and a closing bracket
		if i > 0 && col+len(sep)+len(c)+1 > lineWidth {
			b.WriteString("\n ")
			col = 1
			sep = ""
		}
		b.WriteString(sep)
		b.WriteString(c)
		col += len(sep) + len(c)
	}
	b.WriteByte(']')
	return b.String()
}

func exponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	e, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	return e
}

// useExponent is true when the finite non-zero magnitudes are very large,
// very small or span more than three decades.
func useExponent(x []float64) bool {
	lo, hi := math.Inf(1), 0.0
	for _, v := range x {
		a := math.Abs(v)
		if a == 0 || math.IsInf(a, 0) || math.IsNaN(a) {
			continue
		}
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
	}
	if hi == 0 {
		return false
	}
	return hi >= 1e8 || lo < 1e-4 || hi/lo > 1e3
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

// fixedCells formats each value with at most precision fractional digits,
// right-aligning the integer parts and left-aligning the fractions.
func fixedCells(x []float64) []string {
	ints := make([]string, len(x))
	fracs := make([]string, len(x))
	intW, fracW := 0, 0
	for i, v := range x {
		if _, ok := special(v); ok {
			continue
		}
		s := strings.TrimRight(strconv.FormatFloat(v, 'f', precision, 64), "0")
		dot := strings.IndexByte(s, '.')
		ints[i], fracs[i] = s[:dot], s[dot:]
		intW = max(intW, len(ints[i]))
		fracW = max(fracW, len(fracs[i]))
	}
	cells := make([]string, len(x))
	width := 0
	for i, v := range x {
		if s, ok := special(v); ok {
			cells[i] = s
		} else {
			cells[i] = fmt.Sprintf("%*s%-*s", intW, ints[i], fracW, fracs[i])
		}
		width = max(width, len(cells[i]))
	}
	for i := range cells {
		cells[i] = fmt.Sprintf("%*s", width, cells[i])
	}
	return cells
}

// exponentCells formats each value in exponent form with a shared mantissa
// precision of at most precision digits. Exponents are zero-padded to a
// common width of at least two digits.
func exponentCells(x []float64) []string {
	digits := 0
	for _, v := range x {
		if _, ok := special(v); ok {
			continue
		}
		s := strings.TrimRight(strings.Split(strconv.FormatFloat(v, 'e', precision, 64), "e")[0], "0")
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			digits = max(digits, len(s)-dot-1)
		}
	}

	mants := make([]string, len(x))
	exps := make([]string, len(x))
	signs := make([]byte, len(x))
	expW := 2
	for i, v := range x {
		if _, ok := special(v); ok {
			continue
		}
		s := strconv.FormatFloat(v, 'e', digits, 64)
		e := strings.IndexByte(s, 'e')
		mants[i] = s[:e]
		if digits == 0 {
			mants[i] += "."
		}
		signs[i], exps[i] = s[e+1], s[e+2:]
		expW = max(expW, len(exps[i]))
	}

	cells := make([]string, len(x))
	width := 0
	for i, v := range x {
		if s, ok := special(v); ok {
			cells[i] = s
		} else {
			cells[i] = mants[i] + "e" + string(signs[i]) + strings.Repeat("0", expW-len(exps[i])) + exps[i]
		}
		width = max(width, len(cells[i]))
	}
	for i := range cells {
		cells[i] = fmt.Sprintf("%*s", width, cells[i])
	}
	return cells
}
