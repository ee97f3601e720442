package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sangkips/promo-kiosk/pkg/apperror"
)

// Prompts shown to the customer
const (
	promptOrder      = "Please enter the product names and quantities to buy. (e.g. [cider-2],[potato chips-1])"
	promptMembership = "Would you like the membership discount? (Y/N)"
	promptContinue   = "Thank you. Is there anything else you would like to buy? (Y/N)"
	promptBonus      = "You can get %d more %s for free. Would you like to add it? (Y/N)"
	promptShortfall  = "%d units of %s are not eligible for the promotion. Buy them at full price anyway? (Y/N)"
)

// InputView reads customer answers line by line
type InputView struct {
	in  *bufio.Reader
	out io.Writer
	ui  *OutputView
}

// NewInputView creates an input view reading from in and prompting on out
func NewInputView(in io.Reader, out io.Writer) *InputView {
	return &InputView{
		in:  bufio.NewReader(in),
		out: out,
		ui:  NewOutputView(out),
	}
}

// ReadOrder prompts for the order line input and returns it raw
func (v *InputView) ReadOrder() (string, error) {
	fmt.Fprintln(v.out, promptOrder)
	return v.readLine()
}

// AskYesNo shows prompt until the customer answers Y or N
func (v *InputView) AskYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprintln(v.out, prompt)
		line, err := v.readLine()
		if err != nil {
			return false, err
		}
		answer, err := ParseAnswer(line)
		if err == nil {
			return answer, nil
		}
		v.ui.ShowError(err)
	}
}

// readLine returns the next line without its line ending.
// A final line without a newline is still returned; io.EOF comes after it.
func (v *InputView) readLine() (string, error) {
	line, err := v.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ParseAnswer accepts Y or N, ignoring case and surrounding blanks
func ParseAnswer(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, apperror.ErrInvalidAnswer
}
