package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size
const (
	FontNormal = 0x00
	FontDouble = 0x11
)

// DefaultWidth is the character width of 58mm receipt paper
const DefaultWidth = 32

// Document builds an ESC/POS byte stream for a thermal receipt printer.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates an initialized document for paper of charWidth columns.
// Use 32 for 58mm paper and 48 for 80mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = DefaultWidth
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width returns the paper width in characters
func (d *Document) Width() int {
	return d.width
}

// Init sends ESC @
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold toggles emphasized text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes s followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator prints a full-width rule made of char.
func (d *Document) Separator(char rune) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue prints key on the left and value flush right.
func (d *Document) KeyValue(key, value string) *Document {
	return d.Text(key + pad(d.width-runeLen(key)-runeLen(value)) + value)
}

// Columns prints a receipt row of name, quantity, and amount.
// The name takes the left half of the paper and is truncated to fit.
func (d *Document) Columns(name, qty, amount string) *Document {
	nameWidth := d.width / 2
	if runeLen(name) >= nameWidth {
		name = truncate(name, nameWidth-1)
	}
	left := name + pad(nameWidth-runeLen(name)) + qty
	return d.Text(left + pad(d.width-runeLen(left)-runeLen(amount)) + amount)
}

// Cut sends a full paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// Bytes returns the accumulated byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
