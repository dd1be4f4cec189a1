package render

// CP437ToUnicode maps each code page 437 byte to the rune it draws.
// Code 0 stays NUL; the renderers treat it as blank.
var CP437ToUnicode = buildCP437()

// unicodeToCP437 is the reverse of CP437ToUnicode for the non-ASCII half.
var unicodeToCP437 = func() map[rune]byte {
	m := make(map[rune]byte, 160)
	for code, r := range CP437ToUnicode {
		if code < 32 || code > 126 {
			m[r] = byte(code)
		}
	}
	delete(m, 0)
	return m
}()

const (
	cp437Low  = "\x00☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼"
	cp437High = "⌂" +
		"ÇüéâäàåçêëèïîìÄÅ" +
		"ÉæÆôöòûùÿÖÜ¢£¥₧ƒ" +
		"áíóúñÑªº¿⌐¬½¼¡«»" +
		"░▒▓│┤╡╢╖╕╣║╗╝╜╛┐" +
		"└┴┬├─┼╞╟╚╔╩╦╠═╬╧" +
		"╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀" +
		"αßΓπΣσµτΦΘΩδ∞φε∩" +
		"≡±≥≤⌠⌡÷≈°∙·√ⁿ²■\u00a0"
)

func buildCP437() [256]rune {
	var t [256]rune
	i := 0
	for _, r := range cp437Low {
		t[i] = r
		i++
	}
	for ; i < 127; i++ {
		t[i] = rune(i)
	}
	for _, r := range cp437High {
		t[i] = r
		i++
	}
	return t
}

// ToCP437 returns the code page byte for r, or '?' if it has none.
func ToCP437(r rune) byte {
	if r >= 32 && r <= 126 {
		return byte(r)
	}
	if b, ok := unicodeToCP437[r]; ok {
		return b
	}
	return '?'
}
