// Package parser recovers a file mapping from raw LLM output. Models are
// instructed to emit explicit file-delimiter blocks, but responses drift,
// so extraction runs through an ordered chain of strategies and stops at
// the first one that recognizes anything.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"sitegen_server/internal/types"
)

// A strategy inspects raw text and returns the files it recognized. An
// empty result means "no match here, try the next one".
type strategy func(text string) types.FileMapping

var strategies = []strategy{
	extractDelimitedBlocks,
	extractFencedBlocks,
	extractWholeDocument,
}

// Extract runs the strategy chain over text. Strategies are mutually
// exclusive: results are never merged across them. An empty mapping is a
// valid outcome meaning nothing usable was found.
func Extract(text string) types.FileMapping {
	if strings.TrimSpace(text) == "" {
		return types.FileMapping{}
	}
	for _, extract := range strategies {
		if files := extract(text); len(files) > 0 {
			return files
		}
	}
	return types.FileMapping{}
}

// Delimited file blocks, the format the prompt asks for:
//
//	--- relative/file/path ---
//	<content>
//	--- end ---
//
// The closing token is matched case-insensitively; filenames are honored
// verbatim, including path separators.
var delimitedBlockRe = regexp.MustCompile(`(?si)---[ \t]*([^\n]+?)[ \t]*---[ \t]*\r?\n(.*?)---[ \t]*end[ \t]*---`)

func extractDelimitedBlocks(text string) types.FileMapping {
	files := types.FileMapping{}
	for _, match := range delimitedBlockRe.FindAllStringSubmatch(text, -1) {
		filename := strings.TrimSpace(match[1])
		if filename == "" || strings.EqualFold(filename, "end") {
			continue
		}
		files[filename] = strings.TrimSpace(match[2])
	}
	return files
}

// Fenced code blocks with an optional (ignored) language hint. Files are
// named positionally since the fences carry no path information.
var fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z0-9+#._-]*[ \t]*\r?\n(.*?)```")

func extractFencedBlocks(text string) types.FileMapping {
	files := types.FileMapping{}
	for i, match := range fencedBlockRe.FindAllStringSubmatch(text, -1) {
		content := strings.TrimSpace(match[1])
		if content == "" {
			continue
		}
		files[fmt.Sprintf("file_%d.txt", i+1)] = content
	}
	return files
}

// Last resort: if the response looks like a bare HTML document, keep the
// whole thing as index.html.
func extractWholeDocument(text string) types.FileMapping {
	if !strings.Contains(strings.ToLower(text), "<html") {
		return types.FileMapping{}
	}
	return types.FileMapping{"index.html": strings.TrimSpace(text)}
}
