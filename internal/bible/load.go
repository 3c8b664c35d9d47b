package bible

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the dataset from the first candidate path that parses into a
// non-empty book list. Exhausting all candidates is fatal for the
// application, so the last error is returned for the startup screen.
func Load(candidates []string) (*Dataset, error) {
	var lastErr error

	for _, path := range candidates {
		raw, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}

		var data Dataset
		if err := json.Unmarshal(raw, &data); err != nil {
			lastErr = fmt.Errorf("parse dataset %s: %w", path, err)
			continue
		}
		if len(data.Books) == 0 {
			lastErr = fmt.Errorf("dataset %s is empty", path)
			continue
		}
		return &data, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no dataset candidates configured")
	}
	return nil, fmt.Errorf("load dataset: %w", lastErr)
}
