package dynamic

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// operationAliases normalizes every accepted operation token to an
// Operation.
var operationAliases = map[string]Operation{
	"add": OpAdd,
	"insert": OpAdd,
	"addition": OpAdd,
	"insertion": OpAdd,
	"remove": OpRemove,
	"delete": OpRemove,
	"removal": OpRemove,
	"deletion": OpRemove,
}

var operationKeys = []string{"operation", "op", "action", "type"}
var sourceKeys = []string{"source", "u", "from"}
var targetKeys = []string{"target", "v", "to"}

// ParseStream decodes an update stream: either a bare JSON array of update
// records, or an object with an "updates" field holding that array.
// Parsing is strict: every record must carry exactly one operation alias,
// one source alias, and one target alias, and no other fields; any
// violation fails the whole stream, with no partial result.
func ParseStream(data []byte) ([]Update, error) {
	var entries []map[string]interface{}
	if err := json.Unmarshal(data, &entries); err == nil {
		return parseEntries(entries)
	}

	var wrapped struct {
		Updates []map[string]interface{} `json:"updates"`
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("dynamic: decode update stream: %w", ErrUpdateStreamMalformed)
	}
	if _, ok := probe["updates"]; !ok {
		return nil, fmt.Errorf(`dynamic: update stream has neither an array nor an "updates" field: %w`, ErrUpdateStreamMalformed)
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("dynamic: decode update stream: %w", ErrUpdateStreamMalformed)
	}
	return parseEntries(wrapped.Updates)
}

func parseEntries(entries []map[string]interface{}) ([]Update, error) {
	updates := make([]Update, 0, len(entries))
	for i, entry := range entries {
		u, err := parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("update %d: %w", i, err)
		}
		updates = append(updates, u)
	}
	return updates, nil
}

func parseEntry(entry map[string]interface{}) (Update, error) {
	opRaw, err := pickOne(entry, operationKeys)
	if err != nil {
		return Update{}, err
	}
	srcRaw, err := pickOne(entry, sourceKeys)
	if err != nil {
		return Update{}, err
	}
	tgtRaw, err := pickOne(entry, targetKeys)
	if err != nil {
		return Update{}, err
	}
	if len(entry) != 3 {
		return Update{}, fmt.Errorf("unrecognized field in update record: %w", ErrUpdateStreamMalformed)
	}

	opStr, ok := opRaw.(string)
	if !ok {
		return Update{}, fmt.Errorf("operation must be a string: %w", ErrUpdateStreamMalformed)
	}
	op, ok := operationAliases[strings.ToLower(opStr)]
	if !ok {
		return Update{}, fmt.Errorf("unknown operation %q: %w", opStr, ErrUpdateStreamMalformed)
	}

	source, err := asID(srcRaw)
	if err != nil {
		return Update{}, err
	}
	target, err := asID(tgtRaw)
	if err != nil {
		return Update{}, err
	}

	return Update{Operation: op, Source: source, Target: target}, nil
}

// pickOne returns the single value found among entry's keys, erroring if
// none or more than one of the alias keys is present.
func pickOne(entry map[string]interface{}, aliases []string) (interface{}, error) {
	var value interface{}
	found := 0
	for _, k := range aliases {
		if v, ok := entry[k]; ok {
			value = v
			found++
		}
	}
	switch {
	case found == 0:
		return nil, fmt.Errorf("missing field (any of %v): %w", aliases, ErrUpdateStreamMalformed)
	case found > 1:
		return nil, fmt.Errorf("multiple aliases present for the same field (%v): %w", aliases, ErrUpdateStreamMalformed)
	default:
		return value, nil
	}
}

// asID coerces a decoded JSON scalar into a node ID string: IDs may appear
// as either JSON strings or JSON numbers in an update stream.
func asID(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", fmt.Errorf("endpoint ID is empty: %w", ErrUpdateStreamMalformed)
		}
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("endpoint must be a string or number: %w", ErrUpdateStreamMalformed)
	}
}
