package markup

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MathRenderer turns a TeX expression into the display string written next to
// it on export.
type MathRenderer interface {
	RenderMath(expr string) string
}

// MathRendererFunc adapts a function to MathRenderer.
type MathRendererFunc func(expr string) string

func (f MathRendererFunc) RenderMath(expr string) string { return f(expr) }

// UnicodeMath renders common TeX commands, fractions and single-level
// scripts as plain Unicode. Unknown commands keep their name.
var UnicodeMath MathRenderer = MathRendererFunc(renderUnicode)

var fracRegexp = regexp.MustCompile(`\\[dt]?frac\{([^{}]*)\}\{([^{}]*)\}`)

var texSymbols = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"zeta": "ζ", "eta": "η", "theta": "θ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "pi": "π", "rho": "ρ",
	"sigma": "σ", "tau": "τ", "phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ", "Pi": "Π",
	"Sigma": "Σ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",
	"times": "×", "div": "÷", "cdot": "·", "pm": "±", "mp": "∓",
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠",
	"approx": "≈", "equiv": "≡", "sim": "∼", "propto": "∝",
	"infty": "∞", "partial": "∂", "nabla": "∇", "sum": "∑", "prod": "∏",
	"int": "∫", "oint": "∮", "sqrt": "√",
	"in": "∈", "notin": "∉", "subset": "⊂", "supset": "⊃", "cup": "∪",
	"cap": "∩", "emptyset": "∅", "forall": "∀", "exists": "∃", "neg": "¬",
	"land": "∧", "lor": "∨", "to": "→", "rightarrow": "→", "leftarrow": "←",
	"Rightarrow": "⇒", "Leftarrow": "⇐", "leftrightarrow": "↔", "degree": "°",
	"ldots": "…", "cdots": "⋯", "angle": "∠", "perp": "⊥", "parallel": "∥",
	"left": "", "right": "", "quad": " ", "qquad": "  ",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴', '5': '⁵', '6': '⁶',
	'7': '⁷', '8': '⁸', '9': '⁹', '+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽',
	')': '⁾', 'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄', '5': '₅', '6': '₆',
	'7': '₇', '8': '₈', '9': '₉', '+': '₊', '-': '₋', '=': '₌', '(': '₍',
	')': '₎',
}

func renderUnicode(expr string) string {
	expr = fracRegexp.ReplaceAllString(expr, "$1/$2")
	var sb strings.Builder
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == '\\':
			j := i + 1
			for j < len(expr) && isASCIILetter(expr[j]) {
				j++
			}
			if j == i+1 {
				// escaped character or spacing command
				if j < len(expr) {
					switch expr[j] {
					case ',', ';', ':', ' ', '!':
						sb.WriteByte(' ')
					default:
						sb.WriteByte(expr[j])
					}
					j++
				}
				i = j
				continue
			}
			name := expr[i+1 : j]
			if s, ok := texSymbols[name]; ok {
				sb.WriteString(s)
			} else {
				sb.WriteString(name)
			}
			i = j
		case c == '^' || c == '_':
			arg, next := scriptArg(expr, i+1)
			table := superscripts
			if c == '_' {
				table = subscripts
			}
			if s, ok := mapRunes(arg, table); ok {
				sb.WriteString(s)
			} else {
				sb.WriteByte(c)
				sb.WriteString(renderUnicode(arg))
			}
			i = next
		case c == '{' || c == '}':
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// scriptArg returns the argument of a ^ or _ starting at i: a braced group or
// a single character.
func scriptArg(expr string, i int) (string, int) {
	if i >= len(expr) {
		return "", i
	}
	if expr[i] != '{' {
		_, size := utf8.DecodeRuneInString(expr[i:])
		return expr[i : i+size], i + size
	}
	depth := 0
	for j := i; j < len(expr); j++ {
		switch expr[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return expr[i+1 : j], j + 1
			}
		}
	}
	return expr[i+1:], len(expr)
}

func mapRunes(s string, table map[rune]rune) (string, bool) {
	if s == "" {
		return "", false
	}
	var sb strings.Builder
	for _, r := range s {
		m, ok := table[r]
		if !ok {
			return "", false
		}
		sb.WriteRune(m)
	}
	return sb.String(), true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
