package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
)

// orderItemPattern matches one "[name-quantity]" token
var orderItemPattern = regexp.MustCompile(`^\[([\p{L}\p{N}][\p{L}\p{N} ]*)-(\d+)\]$`)

// ParseOrder parses "[name-qty],[name-qty]" into order lines.
// Only the syntax is checked; zero quantities and unknown names pass through.
func ParseOrder(input string) ([]entity.OrderLine, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, apperror.ErrInvalidOrderFormat
	}

	tokens := strings.Split(input, ",")
	lines := make([]entity.OrderLine, 0, len(tokens))
	for _, token := range tokens {
		m := orderItemPattern.FindStringSubmatch(strings.TrimSpace(token))
		if m == nil {
			return nil, apperror.ErrInvalidOrderFormat
		}
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, apperror.ErrInvalidOrderFormat
		}
		lines = append(lines, entity.OrderLine{
			ProductName: strings.TrimSpace(m[1]),
			Quantity:    qty,
		})
	}
	return lines, nil
}

// MergeOrderLines sums repeated products into one line, keeping first-seen order
func MergeOrderLines(lines []entity.OrderLine) []entity.OrderLine {
	index := make(map[string]int, len(lines))
	merged := make([]entity.OrderLine, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductName]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductName] = len(merged)
		merged = append(merged, line)
	}
	return merged
}
