package tokens

import (
	"bytes"
	"fmt"
	"os"
)

// MergeDocuments concatenates the UTF-8 contents of paths into a single
// training corpus, trimming trailing blank lines from each document and
// following every document, the last one included, with a newline and
// RuneDocBoundary, so document boundaries stay marked in the merged
// corpus. Ported from the reference corpus merge utility.
func MergeDocuments(paths []string) ([]byte, error) {
	var out bytes.Buffer
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("tokens: read %s: %w", path, err)
		}
		out.Write(trimTrailingBlankLines(data))
		out.WriteByte('\n')
		out.WriteRune(RuneDocBoundary)
	}
	return out.Bytes(), nil
}

// trimTrailingBlankLines drops trailing newline-only lines from data,
// matching the reference merge utility's "pop blank lines off the end"
// step.
func trimTrailingBlankLines(data []byte) []byte {
	end := len(data)
	for end > 0 {
		lineStart := bytes.LastIndexByte(data[:end], '\n')
		line := data[lineStart+1 : end]
		if len(bytes.TrimSpace(line)) != 0 {
			break
		}
		if lineStart < 0 {
			end = 0
			break
		}
		end = lineStart
	}
	return data[:end]
}
