package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateInvoiceNo returns prefix followed by eight random upper-case hex digits
func GenerateInvoiceNo(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
