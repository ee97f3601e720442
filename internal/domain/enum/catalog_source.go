package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CatalogSource selects where the kiosk loads products and promotions from
type CatalogSource int

const (
	CatalogSourceFile     CatalogSource = 0
	CatalogSourceYAML     CatalogSource = 1
	CatalogSourcePostgres CatalogSource = 2
)

func (s CatalogSource) String() string {
	names := [...]string{"file", "yaml", "postgres"}
	if int(s) < 0 || int(s) >= len(names) {
		return "file"
	}
	return names[s]
}

func (s CatalogSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CatalogSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseCatalogSource(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseCatalogSource converts a configuration value into a CatalogSource
func ParseCatalogSource(value string) (CatalogSource, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "file", "markdown", "md":
		return CatalogSourceFile, nil
	case "yaml", "yml":
		return CatalogSourceYAML, nil
	case "postgres", "postgresql", "db":
		return CatalogSourcePostgres, nil
	}
	return CatalogSourceFile, fmt.Errorf("unknown catalog source %q (use file, yaml, or postgres)", value)
}
