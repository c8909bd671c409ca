// Package transliterate maps text onto an ASCII-safe subset before it is
// embedded into generated documents. Smart punctuation, bullets, accented
// vowels and common symbols are substituted via a fixed table; anything
// still outside ASCII afterwards is dropped rather than corrupting the
// output.
package transliterate

import "strings"

var replacer = strings.NewReplacer(
	// Quotes
	"’", "'", "‘", "'", "“", `"`, "”", `"`,
	"«", `"`, "»", `"`, "`", "'", "´", "'",
	// Dashes
	"–", "-", "—", "-", "−", "-", "‐", "-", "‑", "-",
	// Ellipsis
	"…", "...",
	// Bullets and list markers
	"•", "-", "‣", ">", "▪", "-", "●", "-",
	"○", "o", "■", "-", "□", "-", "⁃", "-", "➢", ">",
	// Accented vowels
	"à", "a", "À", "A", "è", "e", "È", "E",
	"é", "e", "É", "E", "ì", "i", "Ì", "I",
	"ò", "o", "Ò", "O", "ù", "u", "Ù", "U",
	"á", "a", "í", "i", "ó", "o", "ú", "u",
	"â", "a", "ê", "e", "î", "i", "ô", "o", "û", "u",
	"ä", "a", "ë", "e", "ï", "i", "ö", "o", "ü", "u",
	"ñ", "n", "ç", "c",
	// Symbols
	"°", " gradi", "€", "EUR", "£", "GBP",
	"©", "(c)", "®", "(R)", "™", "(TM)",
	"·", "-", "‧", "-",
	// Arrows
	"→", "->", "←", "<-", "↔", "<->", "⇒", "=>", "⇐", "<=",
	// Math
	"×", "x", "÷", "/", "≤", "<=", "≥", ">=",
	"≠", "!=", "≈", "~", "±", "+/-", "∞", "inf",
	// Spaces and invisibles
	" ", " ", " ", " ", " ", " ", " ", " ",
	"​", "", "‌", "", "‍", "", "\uFEFF", "",
	// Line breaks
	"\r\n", "\n", "\r", "\n",
)

// Clean substitutes known non-ASCII characters, drops the rest, and trims
// trailing whitespace per line.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	substituted := replacer.Replace(text)

	var b strings.Builder
	b.Grow(len(substituted))
	for _, r := range substituted {
		if r < 128 {
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
