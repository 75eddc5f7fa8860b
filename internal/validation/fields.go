// Package validation checks request records for required keys.
package validation

import "strings"

// CheckMissingFields reports whether every key in requiredKeys is present in
// record, and the absent ones in requiredKeys order. Only key membership is
// tested; values, including nil, count as present.
func CheckMissingFields(requiredKeys []string, record map[string]interface{}) (bool, []string) {
	missing := []string{}
	for _, key := range requiredKeys {
		if _, ok := record[key]; !ok {
			missing = append(missing, key)
		}
	}
	return len(missing) == 0, missing
}

// MissingFieldsMessage renders the rejection text sent back to callers.
func MissingFieldsMessage(missing []string) string {
	return "Missing Fields: " + strings.Join(missing, ",")
}
