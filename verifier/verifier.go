package verifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	KindBootstrap = "bootstrap"
	KindInstance  = "instance"
)

var ErrUnknownKind = errors.New("unknown config file kind")

var requiredKeys = map[string][]string{
	KindBootstrap: {"aws_key", "aws_secret", "aws_region", "security_group", "ssh_path", "key_pair"},
	KindInstance:  {"ami", "type", "ssh_user", "rules", "commands", "description"},
}

func KnownKind(kind string) bool {
	_, ok := requiredKeys[strings.ToLower(kind)]
	return ok
}

// Verify returns the required keys of the given kind that are absent from the
// JSON object in r, in declaration order. kind is case-insensitive.
func Verify(kind string, r io.Reader) ([]string, error) {
	keys, ok := requiredKeys[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %s", err)
	}

	present := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &present); err != nil {
		return nil, fmt.Errorf("parsing config file: %s", err)
	}

	var missing []string
	for _, key := range keys {
		if _, ok := present[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing, nil
}

func MissingKeyMessage(kind, key string) string {
	return fmt.Sprintf("The %q key is not in the %s file.", key, strings.ToLower(kind))
}
