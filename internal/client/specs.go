package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-users-registry/models"
)

// readSpecs reads user specs from path. The file is either a JSON array of
// specs or an object with a "users" array.
func readSpecs(path string) ([]models.UserSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specs file: %w", err)
	}

	raw = bytes.TrimSpace(raw)

	var specs []models.UserSpec
	if len(raw) > 0 && raw[0] == '[' {
		err = json.Unmarshal(raw, &specs)
	} else {
		var batch models.LoadRequest
		err = json.Unmarshal(raw, &batch)
		specs = batch.Users
	}
	if err != nil {
		return nil, fmt.Errorf("decode specs file %s: %w", path, err)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSpecs, path)
	}

	return specs, nil
}
