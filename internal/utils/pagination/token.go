package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// EncodeEntryToken creates a cursor pointing after the given stock card entry.
func EncodeEntryToken(itemID string, entryNo int64) string {
	return EncodeMultiFieldToken(itemID, strconv.FormatInt(entryNo, 10))
}

// DecodeEntryToken parses a stock card cursor. The token must have been issued
// for itemID.
func DecodeEntryToken(token string, itemID string) (int64, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != itemID {
		return 0, fmt.Errorf("invalid pagination token (issued for another item)")
	}
	entryNo, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || entryNo < 1 {
		return 0, fmt.Errorf("invalid pagination token format (entry number parse)")
	}
	return entryNo, nil
}
