package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// promptLine prints the prompt marker and reads one trimmed line.
func promptLine(reader *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "> ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// maskKey keeps only the edges of an API key for debug logs.
func maskKey(key string) string {
	if len(key) <= 12 {
		return "***"
	}
	return key[:8] + "..." + key[len(key)-4:]
}

// prettyJSON re-indents a raw JSON body, falling back to the raw bytes
// when it cannot be indented.
func prettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
